package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slider/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board size presets",
	Long:  `Shows the board size presets from the active configuration.`,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadSlider(flagConfig)
	if err != nil {
		return err
	}

	if len(cfg.Presets) == 0 {
		fmt.Println("No presets configured.")
		return nil
	}

	fmt.Println("Board presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range cfg.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "Name", "Size", "Description")
	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "----", "----", "-----------")

	for _, p := range cfg.Presets {
		size := fmt.Sprintf("%dx%d", p.Cols, p.Rows)
		fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, p.Name, size, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'slider play --preset <name>' to use one.")
	return nil
}
