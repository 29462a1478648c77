package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a variant (default: classic).

A row is recorded each time a player beats their own best.

Examples:
  flappy scores
  flappy scores drift
  flappy scores --interactive
  flappy scores --stats
  flappy scores custom --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the variant")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-variant statistics")
}

func runScores(_ *cobra.Command, args []string) error {
	variant := string(config.PresetClassic)
	if len(args) > 0 {
		variant = args[0]
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(variant); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s\n", variant)
		return nil

	case flagStats:
		return printStats(store)

	case flagInteractive:
		width, height := terminalSize()
		return tui.RunScoreboard(store, config.Preset(variant), width, height)
	}

	scores, err := store.TopScores(variant, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", variant)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}
	return nil
}

func printStats(store *storage.Store) error {
	all, err := store.GetAllVariantStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-7s  %-7s  %-5s  %-7s  %s\n", "Variant", "Records", "Players", "Best", "Average", "Last played")
	for _, v := range sortedVariants(all) {
		st := all[v]
		fmt.Printf("  %-10s  %-7d  %-7d  %-5d  %-7.1f  %s\n",
			st.Variant, st.Records, st.Players, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
