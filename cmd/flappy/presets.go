package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the variant presets",
	Long:  `Shows the presets that can be applied with --preset. Each preset keeps its own scoreboard.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := config.Presets()

	// Calculate column widths
	maxLen := len("Preset")
	for _, p := range presets {
		maxLen = max(maxLen, len(p))
	}

	fmt.Println("Available presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Preset", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "-----------")
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxLen, p, p.Describe())
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --preset <name>' to play a preset.")
}

// sortedVariants returns the variant names of stats in display order.
func sortedVariants(stats map[string]*storage.VariantStats) []string {
	names := make([]string, 0, len(stats))
	for v := range stats {
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}
