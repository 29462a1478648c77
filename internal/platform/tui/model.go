package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// footerRows is the number of terminal rows below the play area,
// used for the help line and status messages.
const footerRows = 2

// Options configures a game model.
type Options struct {
	Flappy  config.FlappyConfig
	Runtime core.RuntimeConfig

	// Assets resolves the image handles. Nil uses the handles in Flappy.
	Assets flappy.AssetProvider

	// Scores persists the high score. Nil keeps it in memory.
	Scores flappy.HighScoreStore

	// Logger receives session diagnostics. Nil discards them.
	Logger *log.Logger

	// Renderer styles the output. Nil uses the local terminal.
	// SSH sessions pass a renderer bound to the remote terminal.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s dumps are written.
	// Empty means ~/.arcade/screenshots.
	ScreenshotDir string
}

// assetsMsg carries the outcome of asset resolution.
type assetsMsg struct {
	bundle flappy.AssetBundle
	err    error
}

// Model is the Bubble Tea model hosting one flappy session.
// Pointer fields are shared between copies, so the value receivers
// Bubble Tea requires still observe a single session.
type Model struct {
	session  *flappy.Session
	cfg      config.FlappyConfig
	runtime  core.RuntimeConfig
	assets   flappy.AssetProvider
	logger   *log.Logger
	screen   *core.Screen
	renderer *Renderer
	keys     *KeyMapper
	help     help.Model
	hud      *hudState
	bridge   *clockBridge
	ctx      context.Context
	cancel   context.CancelFunc
	shotDir  string
	status   string
	quitting bool
	loading  bool // An asset resolution is in flight
}

// NewModel creates a model in the Loading state. Assets are resolved
// and the clock is started by Init.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	provider := opts.Assets
	if provider == nil {
		provider = flappy.NewStaticAssets(opts.Flappy)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}

	screen := core.NewScreen(rt.ScreenW, playRows(rt.ScreenH))
	screen.SetViewport(opts.Flappy.Canvas.Width, opts.Flappy.Canvas.Height)

	hud := &hudState{}
	session := flappy.NewSession(opts.Flappy, opts.Scores, rt.Seed, logger)
	session.Subscribe(hud.observe)

	h := help.New()
	h.Width = rt.ScreenW

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		session:  session,
		cfg:      opts.Flappy,
		runtime:  rt,
		assets:   provider,
		logger:   logger,
		screen:   screen,
		renderer: NewRenderer(opts.Renderer),
		keys:     NewKeyMapper(),
		help:     h,
		hud:      hud,
		bridge:   newClockBridge(),
		ctx:      ctx,
		cancel:   cancel,
		shotDir:  shotDir,
		loading:  true,
	}
}

func playRows(termH int) int {
	return max(termH-footerRows, 0)
}

// Session returns the hosted session.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Screen returns the play-area buffer.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Init starts the clock and asset resolution.
func (m Model) Init() tea.Cmd {
	clock := flappy.NewClock(m.runtime.FrameInterval(), m.cfg.Pipes.SpawnInterval())
	return tea.Batch(
		m.bridge.run(m.ctx, clock),
		m.bridge.nextFrame(m.ctx),
		m.bridge.nextSpawn(m.ctx),
		m.loadAssets(),
	)
}

func (m Model) loadAssets() tea.Cmd {
	ctx, provider := m.ctx, m.assets
	return func() tea.Msg {
		bundle, err := provider.Resolve(ctx)
		return assetsMsg{bundle: bundle, err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		// Ticks wait until there is something to draw on
		if m.screen.Ready() {
			m.session.Tick()
		}
		return m, m.bridge.nextFrame(m.ctx)

	case SpawnMsg:
		if m.screen.Ready() {
			m.session.Spawn()
		}
		return m, m.bridge.nextSpawn(m.ctx)

	case assetsMsg:
		m.loading = false
		if err := m.session.Resolve(msg.bundle, msg.err); err != nil {
			m.status = "assets failed, press space to retry"
			return m, nil
		}
		if b := m.session.Assets(); b != nil {
			applySprites(m.screen, SpriteSheet(m.cfg, *b))
		}
		m.status = ""
		return m, nil

	case clockStoppedMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("clock stopped", "err", msg.err)
			m.status = "clock stopped: " + msg.err.Error()
		}
		return m, nil
	}

	return m, nil
}

// handleAction applies one mapped input.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		m.Shutdown()
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionPrimary:
		// A failed resolution is retried on demand
		snap := m.session.Snapshot()
		if snap.State == flappy.StateLoading && snap.AssetErr != nil {
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.status = "retrying assets..."
			return m, m.loadAssets()
		}
		m.session.Input(a)
	}
	return m, nil
}

// Shutdown stops the clock and closes the session. It is safe to call twice.
func (m Model) Shutdown() {
	m.cancel()
	m.session.Close()
}

// saveScreenshot saves the current play area as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// draw repaints the play area from the session.
func (m Model) draw() {
	m.screen.Clear()
	m.session.Render(m.screen)
	drawHUD(m.screen, m.session.Snapshot(), m.hud)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.screen))

	helpStyle := m.renderer.lg.NewStyle().Foreground(lipgloss.Color("241"))
	footer := []string{m.help.View(m.keys.Keys()), m.status}
	if m.help.ShowAll {
		footer = strings.SplitN(m.help.View(m.keys.Keys()), "\n", footerRows)
	}
	for _, line := range footer {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(line))
	}
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Shutdown()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
