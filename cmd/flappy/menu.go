package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Start the variant picker. Choosing a variant starts a game; quitting the
game returns to the picker. Tab opens the scoreboard for the highlighted variant.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	current := config.PresetClassic
	if flagPreset != "" {
		if current, err = config.ParsePreset(flagPreset); err != nil {
			return err
		}
	}

	for {
		width, height := terminalSize()
		res, err := tui.RunMenu(current, width, height)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		current = res.Preset

		if res.WantsScoreboard {
			if err := showScoreboard(current, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
			continue
		}

		cfg := base
		if err := config.ApplyFlappyPreset(&cfg, current); err != nil {
			return err
		}
		if err := playGame(cfg, string(current)); err != nil {
			return err
		}
	}
}

func showScoreboard(variant config.Preset, width, height int) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("could not open scores database: %w", err)
	}
	defer store.Close()
	return tui.RunScoreboard(store, variant, width, height)
}
