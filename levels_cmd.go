package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/modordie/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	names := levels.Names()
	if len(names) == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxLen := len("NAME")
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "NAME", "TITLE")
	for _, name := range names {
		title := ""
		if spec, err := levels.LoadSpec(name); err == nil {
			title = spec.Title
		}
		fmt.Printf("  %-*s  %s\n", maxLen, name, title)
	}

	fmt.Println()
	fmt.Println("Run 'modordie --level <name>' to play one.")
}
