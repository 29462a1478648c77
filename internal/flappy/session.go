package flappy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EventKind identifies a session notification.
type EventKind int

const (
	EventState     EventKind = iota // State changed, see From and To
	EventScore                      // Score changed, see Score
	EventHighScore                  // High score beaten and committed, see HighScore
)

// Event is delivered to observers after the session changed.
type Event struct {
	Kind      EventKind
	From, To  State
	Score     int
	HighScore int
}

// Snapshot is a read-only copy of the session handed to renderers.
type Snapshot struct {
	State     State
	Bird      Bird
	Pipes     []Pipe
	Score     int
	HighScore int
	Frames    int
	AssetErr  error // Last asset resolution failure while Loading
}

type observer struct {
	id int
	fn func(Event)
}

// Session owns one game: its state machine, entities and score.
// A Session is not safe for concurrent use; hosts serialize Tick, Spawn,
// Press and Render on one goroutine.
type Session struct {
	cfg     config.FlappyConfig
	logger  *log.Logger
	store   HighScoreStore
	spawner *Spawner

	state     State
	bird      Bird
	pipes     []Pipe
	score     int
	highScore int
	frames    int
	assets    *AssetBundle
	assetErr  error
	closed    bool

	observers []observer
	nextObsID int
}

// NewSession creates a session in the Loading state and reads the high score.
// A nil store keeps scores in memory; a nil logger discards output.
func NewSession(cfg config.FlappyConfig, store HighScoreStore, seed int64, logger *log.Logger) *Session {
	if store == nil {
		store = &MemoryScores{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		spawner: NewSpawner(seed),
		state:   StateLoading,
		bird:    NewBird(cfg.Bird.StartY),
		pipes:   make([]Pipe, 0, 8),
	}

	best, err := store.Read()
	if err != nil {
		logger.Warn("high score unavailable", "err", err)
	} else {
		s.highScore = best
	}
	return s
}

// Config returns the constants table the session runs with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Bird returns a copy of the player entity.
func (s *Session) Bird() Bird {
	return s.bird
}

// Pipes returns a copy of the obstacle sequence, oldest first.
func (s *Session) Pipes() []Pipe {
	return append([]Pipe(nil), s.pipes...)
}

// Frames returns the animation frame counter.
func (s *Session) Frames() int {
	return s.frames
}

// Assets returns the resolved bundle, or nil while Loading.
func (s *Session) Assets() *AssetBundle {
	return s.assets
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	return s.closed
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Bird:      s.bird,
		Pipes:     s.Pipes(),
		Score:     s.score,
		HighScore: s.highScore,
		Frames:    s.frames,
		AssetErr:  s.assetErr,
	}
}

// Subscribe registers fn for session events and returns a func that removes it.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) emit(e Event) {
	for _, o := range append([]observer(nil), s.observers...) {
		o.fn(e)
	}
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	s.logger.Debug("state", "from", from, "to", to, "score", s.score)
	s.emit(Event{Kind: EventState, From: from, To: to, Score: s.score})
}

// Resolve feeds the outcome of asset resolution into the state machine.
// A valid bundle moves Loading to Ready. A failure or an invalid bundle keeps
// the session in Loading and is returned wrapped in ErrInvalidAssets.
// Outside Loading the call is ignored.
func (s *Session) Resolve(bundle AssetBundle, err error) error {
	if s.closed || s.state != StateLoading {
		return nil
	}
	if err == nil {
		err = bundle.Validate(s.cfg.Bird.Frames)
	}
	if err != nil {
		s.assetErr = err
		s.logger.Error("asset resolution failed", "err", err)
		if errors.Is(err, ErrInvalidAssets) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidAssets, err)
	}

	s.assets = &bundle
	s.assetErr = nil
	s.transition(StateReady)
	return nil
}

// Load resolves assets from provider and feeds the result to Resolve.
func (s *Session) Load(ctx context.Context, provider AssetProvider) error {
	bundle, err := provider.Resolve(ctx)
	return s.Resolve(bundle, err)
}

// Input maps a semantic action into the state machine.
// Only ActionPrimary is interpreted.
func (s *Session) Input(a core.Action) {
	if a == core.ActionPrimary {
		s.Press()
	}
}

// Press applies the primary action to the current state.
func (s *Session) Press() {
	if s.closed {
		return
	}
	switch s.state {
	case StateReady:
		s.transition(StatePlaying)
		if s.cfg.Physics.FlapOnStart {
			Flap(s.cfg, &s.bird)
		}
	case StatePlaying:
		Flap(s.cfg, &s.bird)
	case StateGameOver:
		s.commitHighScore()
		s.reset()
		s.transition(StateReady)
	}
}

func (s *Session) commitHighScore() {
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	if err := s.store.Write(s.score); err != nil {
		s.logger.Warn("high score not saved", "score", s.score, "err", err)
	}
	s.emit(Event{Kind: EventHighScore, Score: s.score, HighScore: s.highScore})
}

func (s *Session) reset() {
	s.bird = NewBird(s.cfg.Bird.ResetY)
	s.pipes = s.pipes[:0]
	if s.score != 0 {
		s.score = 0
		s.emit(Event{Kind: EventScore, Score: 0})
	}
}

// Tick advances the session by one animation tick.
func (s *Session) Tick() {
	if s.closed || s.state == StateLoading {
		return
	}
	s.frames++

	switch s.state {
	case StatePlaying:
		StepBird(s.cfg, &s.bird, s.frames)

		var scored int
		s.pipes, scored = AdvancePipes(s.cfg.Pipes, s.pipes, s.cfg.Bird.X)
		if scored > 0 {
			s.score += scored
			s.emit(Event{Kind: EventScore, Score: s.score})
		}

		if Collides(s.cfg, s.bird, s.pipes) {
			s.transition(StateGameOver)
		}
	case StateGameOver:
		FallBird(s.cfg, &s.bird)
	}
}

// Spawn adds one pipe at the right edge. It only has an effect while Playing.
func (s *Session) Spawn() {
	if s.closed || s.state != StatePlaying {
		return
	}
	s.pipes = append(s.pipes, s.spawner.Next(s.cfg))
}

// Dispatch routes a clock trigger to Tick or Spawn.
func (s *Session) Dispatch(t Trigger) {
	switch t {
	case TriggerFrame:
		s.Tick()
	case TriggerSpawn:
		s.Spawn()
	}
}

// Render draws the session onto dst. It is skipped while assets are unresolved.
func (s *Session) Render(dst core.Surface) {
	if s.closed {
		return
	}
	Render(dst, s.Snapshot(), s.assets, s.cfg)
}

// Close tears the session down. Every later call is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.observers = nil
	s.logger.Debug("session closed", "score", s.score, "high", s.highScore)
}
