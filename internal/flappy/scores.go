package flappy

// HighScoreStore persists the best score across sessions.
// Read is called once when a session starts; Write only when a finished
// round beat the stored value.
type HighScoreStore interface {
	Read() (int, error)
	Write(score int) error
}

// MemoryScores is an in-process HighScoreStore.
type MemoryScores struct {
	Best   int // Stored value
	Writes int // Number of Write calls
}

// Read returns the stored value.
func (m *MemoryScores) Read() (int, error) {
	return m.Best, nil
}

// Write replaces the stored value.
func (m *MemoryScores) Write(score int) error {
	m.Best = score
	m.Writes++
	return nil
}

var _ HighScoreStore = (*MemoryScores)(nil)
