package storage

import (
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// DefaultPlayer is used when no player name is known.
const DefaultPlayer = "local"

// Keeper stores one player's high score for one variant.
type Keeper struct {
	store   *Store
	player  string
	variant string
}

// NewKeeper creates a high-score store scoped to player and variant.
func NewKeeper(store *Store, player, variant string) *Keeper {
	if player == "" {
		player = DefaultPlayer
	}
	return &Keeper{store: store, player: player, variant: variant}
}

// Read returns the player's best score in the variant.
func (k *Keeper) Read() (int, error) {
	return k.store.HighScore(k.player, k.variant)
}

// Write records a new best score.
func (k *Keeper) Write(score int) error {
	_, err := k.store.SaveScore(k.player, k.variant, score)
	return err
}

var _ flappy.HighScoreStore = (*Keeper)(nil)
