package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player, variant string
		score           int
	}{
		{"alice", "classic", 10},
		{"bob", "classic", 5},
		{"alice", "classic", 20},
		{"carol", "drift", 50},
	} {
		if _, err := store.SaveScore(s.player, s.variant, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 classic scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("score %d = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "alice" || scores[0].Variant != "classic" {
		t.Errorf("top entry = %+v, expected alice/classic", scores[0])
	}

	drift, err := store.TopScores("drift", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(drift) != 1 {
		t.Errorf("Expected 1 drift score, got %d", len(drift))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("p", "classic", (i+1)*100)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("classic", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v", len(all), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("alice", "classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for a new player, got %d", high)
	}

	store.SaveScore("alice", "classic", 7)
	store.SaveScore("alice", "classic", 12)
	store.SaveScore("alice", "drift", 40)
	store.SaveScore("bob", "classic", 99)

	high, err = store.HighScore("alice", "classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score of 12, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("a", "classic", 1)
	store.SaveScore("a", "drift", 2)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if classic, _ := store.TopScores("classic", 10); len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	if drift, _ := store.TopScores("drift", 10); len(drift) != 1 {
		t.Error("drift scores should not be affected by clearing classic")
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if empty.Records != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("a", "classic", 10)
	store.SaveScore("b", "classic", 30)
	store.SaveScore("a", "classic", 20)
	store.SaveScore("a", "drift", 5)

	stats, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.Records != 3 || stats.Players != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 2 || all["drift"].HighScore != 5 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestKeeper(t *testing.T) {
	store := openTestStore(t)

	k := NewKeeper(store, "", "classic")

	if got, err := k.Read(); err != nil || got != 0 {
		t.Fatalf("Read() = %d, %v", got, err)
	}
	if err := k.Write(14); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if got, _ := k.Read(); got != 14 {
		t.Errorf("Read() after Write = %d, expected 14", got)
	}

	other := NewKeeper(store, "bob", "classic")
	if got, _ := other.Read(); got != 0 {
		t.Errorf("keepers must not share players, got %d", got)
	}
}

func TestKeeperWithSession(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("alice", "classic", 3)
	keeper := NewKeeper(store, "alice", "classic")

	cfg := config.DefaultFlappyConfig()
	s := flappy.NewSession(cfg, keeper, 1, nil)
	if s.HighScore() != 3 {
		t.Fatalf("session high score = %d, expected 3 from the database", s.HighScore())
	}
	if err := s.Resolve(flappy.BundleFromConfig(cfg.Assets), nil); err != nil {
		t.Fatal(err)
	}

	// Start a round and let the bird drop to the ground
	s.Press()
	for s.State() == flappy.StatePlaying {
		s.Tick()
	}
	s.Press()

	// Score 0 does not beat 3
	if entries, _ := store.TopScores("classic", 10); len(entries) != 1 {
		t.Errorf("expected no new rows, got %d entries", len(entries))
	}
}
