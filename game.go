package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/modordie/assets"
	"github.com/milk9111/modordie/common"
	"github.com/milk9111/modordie/levels"
	"github.com/milk9111/modordie/obj"
	"github.com/milk9111/modordie/prefabs"
	"github.com/milk9111/modordie/render"
)

// GameOptions are the command line choices the game starts with.
type GameOptions struct {
	Level      string
	ConfigPath string
	Debug      bool
	Watch      bool
	Mute       bool
	Logger     *log.Logger
}

type Game struct {
	frames int

	opts   GameOptions
	conf   common.Conf
	logger *log.Logger

	assets  *assets.Loader
	surface *render.Surface
	drawer  *render.PhysicsDrawer
	input   *Input
	level   *obj.Level

	paused  bool
	quit    bool
	ui      *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{
		opts:   opts,
		logger: opts.Logger,
		assets: assets.NewLoader(nil, opts.Logger),
		input:  NewInput(),
	}
	g.assets.SetMuted(opts.Mute)
	if err := g.load(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(watchDirs(opts.ConfigPath)...)
		if err != nil {
			return nil, fmt.Errorf("watch: %w", err)
		}
		g.watcher = w
		g.logger.Info("watching for changes", "dirs", w.WatchList())
	}
	return g, nil
}

// load reads the configuration and builds a fresh level. The current level
// is only replaced when everything succeeded.
func (g *Game) load() error {
	conf, err := common.LoadConf(g.opts.ConfigPath)
	if err != nil {
		return err
	}

	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}

	surface, err := render.NewSurface(conf.ScreenWidth, conf.ScreenHeight)
	if err != nil {
		return err
	}

	level, err := levels.New(g.opts.Level, levels.Env{
		Conf:    conf,
		Assets:  g.assets,
		Surface: surface,
		Player:  playerSprite(player),
		Logger:  g.logger,
	})
	if err != nil {
		return err
	}
	if err := level.Setup(); err != nil {
		return err
	}

	g.conf = conf
	g.surface = surface
	g.drawer = render.NewPhysicsDrawer(surface)
	g.level = level
	g.ui = NewPauseUI(g)
	g.input.Release()
	ebiten.SetWindowTitle(level.Title())
	return nil
}

func playerSprite(spec *prefabs.PlayerSpec) obj.PlayerSprite {
	return obj.PlayerSprite{
		Stand:          spec.Stand,
		Walk:           spec.Walk,
		ChangeDistance: spec.ChangeDistance,
		JumpSound:      spec.Sound("jump"),
		GameOverSound:  spec.Sound("game_over"),
	}
}

func watchDirs(configPath string) []string {
	dirs := []string{"configs", "levels", "prefabs"}
	if configPath != "" {
		dirs = append(dirs, filepath.Dir(configPath))
	}
	return dirs
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if g.quit {
		return ebiten.Termination
	}

	if g.input.PausePressed() {
		g.setPaused(!g.paused)
		return nil
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	for _, ev := range g.input.Update() {
		if ev.Pressed {
			g.level.KeyPress(ev.Action)
		} else {
			g.level.KeyRelease(ev.Action)
		}
	}
	return g.level.Update(1 / float64(ebiten.TPS()))
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		for _, ev := range g.input.Release() {
			g.level.KeyRelease(ev.Action)
		}
	}
}

func (g *Game) restart() {
	g.paused = false
	if err := g.level.Setup(); err != nil {
		g.logger.Error("restart level", "err", err)
		g.quit = true
	}
}

// pollWatcher drains pending file changes without blocking and reloads once
// if anything changed.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := ""
drain:
	for {
		select {
		case name := <-g.watcher.Events:
			changed = name
		case err := <-g.watcher.Errors:
			g.logger.Warn("watcher", "err", err)
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	if err := g.load(); err != nil {
		g.logger.Warn("reload failed, keeping current level", "file", changed, "err", err)
		return
	}
	g.logger.Info("reloaded", "file", changed, "level", g.level.Title())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.level.Draw()

	if g.opts.Debug {
		g.level.Physics().DebugDraw(g.drawer)
		ebitenutil.DebugPrint(screen, debugText(g.frames, ebiten.ActualFPS(), g.level))
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func debugText(frames int, fps float64, l *obj.Level) string {
	return fmt.Sprintf("Frames: %d    FPS: %.2f\n%s    score %d    sprites %d    grounded %v    jump %.0f",
		frames, fps, l.State(), l.Score(), l.Registry().Len(), l.CanJump(), l.JumpSpeed())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.conf.ScreenWidth, g.conf.ScreenHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
