package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/games/dodge"
)

// Model is the Bubble Tea model for one dodger session.
// Key presses are queued and consumed by the game loop on the next tick.
type Model struct {
	loop          *dodge.Loop
	queue         *KeyQueue
	renderer      *ScreenRenderer
	keys          KeyMap
	help          help.Model
	frame         time.Duration
	logger        *log.Logger
	screenshotDir string

	paused   bool
	tooSmall bool
	finished bool
}

// NewModel creates a model around a loop whose input is queue and whose
// renderer is renderer.
func NewModel(loop *dodge.Loop, queue *KeyQueue, renderer *ScreenRenderer, keys KeyMap, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Show the starting position before the first tick.
	renderer.Render(loop.State().Snapshot())

	return Model{
		loop:          loop,
		queue:         queue,
		renderer:      renderer,
		keys:          keys,
		help:          help.New(),
		frame:         loop.FrameBudget(),
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions and handles pause and screenshots.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionPause:
		m.paused = !m.paused
		m.queue.Clear()
		m.logger.Debug("pause toggled", "paused", m.paused)
	case action == core.ActionQuit:
		// Quit always reaches the loop, even from the pause screen.
		m.paused = false
		m.queue.Push(action)
	case m.held():
		// Steering is ignored while the game is held.
	default:
		m.queue.Push(action)
	}

	return m, nil
}

// handleResize holds the game while the terminal cannot show the playfield
// and the help line under it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	needW, needH := m.minSize()
	m.tooSmall = msg.Width < needW || msg.Height < needH
	m.help.Width = msg.Width
	return m, nil
}

// minSize returns the terminal size needed for the screen plus the help line.
func (m Model) minSize() (int, int) {
	s := m.renderer.Screen()
	return s.Width(), s.Height() + 1
}

// handleTick runs one frame of the game loop unless the game is held.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	// Only a quit request gets through a hold.
	if m.held() && !m.queue.QuitPending() {
		return m, tickCmd(m.frame)
	}

	if m.loop.Step() == dodge.GameOver {
		m.finished = true
		return m, tea.Quit
	}
	return m, tickCmd(m.frame)
}

// held reports whether ticks are currently suspended.
func (m Model) held() bool {
	return m.paused || m.tooSmall
}

// View renders the playfield and the key help line.
func (m Model) View() string {
	if m.tooSmall && !m.finished {
		needW, needH := m.minSize()
		return fmt.Sprintf("Terminal too small: need %dx%d\n\n%s",
			needW, needH, m.help.View(m.keys))
	}

	s := m.renderer.Screen()
	if m.paused {
		// The banner goes on a copy so the buffer keeps the last frame.
		s = s.Clone()
		dodge.DrawBanner(s, "PAUSED", "p to resume")
	}
	return RenderScreen(s) + "\n" + m.help.View(m.keys)
}

// Paused reports whether the player paused the game.
func (m Model) Paused() bool {
	return m.paused
}

// Finished reports whether the session reached game over.
func (m Model) Finished() bool {
	return m.finished
}

// defaultScreenshotDir returns ~/.dodger/screenshots, or a relative
// directory when the home directory is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".dodger", "screenshots")
	}
	return filepath.Join(home, ".dodger", "screenshots")
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("dodger_%s_tick%d.txt",
		time.Now().Format("20060102_150405"), m.renderer.Last().Tick)
	path := filepath.Join(m.screenshotDir, name)

	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Result summarizes a finished terminal session.
type Result struct {
	Score  int
	Ticks  uint64
	Reason dodge.EndReason
}

// Run plays one session in the terminal and returns its result.
func Run(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger, opts ...tea.ProgramOption) (Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := rt.ResolvedSeed()
	state := dodge.NewState(cfg, dodge.NewSeededSource(seed))
	queue := NewKeyQueue(DefaultQueueCapacity)
	renderer := NewScreenRenderer(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Glyphs)
	loop := dodge.NewLoop(state, queue, renderer,
		dodge.WithFrameBudget(rt.FrameBudget(cfg.FrameBudget())),
		dodge.WithLogger(logger),
	)

	model := NewModel(loop, queue, renderer, DefaultKeyMap(cfg.Player.Movement), logger)
	logger.Info("session started",
		"width", cfg.Viewport.Width,
		"height", cfg.Viewport.Height,
		"seed", seed,
		"frame", loop.FrameBudget(),
	)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	if queue.Dropped() > 0 {
		logger.Debug("input overflow", "dropped", queue.Dropped())
	}
	return Result{Score: state.Score(), Ticks: state.Ticks(), Reason: state.Reason()}, nil
}
