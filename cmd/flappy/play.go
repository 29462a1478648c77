package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/Click - Flap (also starts and restarts)
  Ctrl+S         - Save a text screenshot
  ?              - Toggle help
  Q/Esc/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --preset drift
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml --log flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, variant, err := loadFlappyConfig()
	if err != nil {
		return err
	}
	return playGame(cfg, variant)
}

// playGame runs one game in this terminal until the player quits.
func playGame(cfg config.FlappyConfig, variant string) error {
	logger, closeLog, err := openLogger("flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	// Open score storage
	var scores flappy.HighScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		scores = storage.NewKeeper(store, player, variant)
	}

	logger.Info("starting", "variant", variant, "player", player, "fps", flagFPS)

	return tui.Run(tui.Options{
		Flappy: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scores: scores,
		Logger: logger,
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
