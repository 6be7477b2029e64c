// modordie is a side-scrolling platformer: run right, jump the pits and
// outpace the rising water to reach the exit sign.
//
// Usage:
//
//	modordie                  - Play the run level
//	modordie --level tester   - Play another level
//	modordie levels           - List available levels
//
// Flags:
//
//	--config <path>  - Environment config yaml
//	--debug          - Debug logging, physics overlay and FPS
//	--watch          - Reload config and levels when their yaml changes
//	--monitor        - Open on the first monitor instead of the primary one
//	--mute           - Play without sound
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/modordie/levels"
)

var (
	flagLevel   string
	flagConfig  string
	flagDebug   bool
	flagWatch   bool
	flagMonitor bool
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "modordie",
	Short: "A side-scrolling platformer",
	Long: `Run right, jump the pits and outpace the rising water.

Controls:
  Left/A, Right/D  - Walk
  Up/W/Space       - Jump
  Esc              - Pause`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "run", "Level to play (see 'modordie levels')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config yaml")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug mode")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload yaml files on change")
	rootCmd.Flags().BoolVar(&flagMonitor, "monitor", false, "Use the first monitor (for multi-monitor setups)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(levelsCmd)
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "modordie",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return logger
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagDebug)

	if !levels.Exists(flagLevel) {
		return fmt.Errorf("%w %q, run 'modordie levels' to see the list", levels.ErrUnknownLevel, flagLevel)
	}

	if flagMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	game, err := NewGame(GameOptions{
		Level:      flagLevel,
		ConfigPath: flagConfig,
		Debug:      flagDebug,
		Watch:      flagWatch,
		Mute:       flagMute,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("start game", "level", flagLevel, "err", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(game.conf.ScreenWidth, game.conf.ScreenHeight)

	logger.Info("starting", "level", flagLevel, "title", game.level.Title())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
