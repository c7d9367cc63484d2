package dodge

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// DefaultFrameBudget is the frame duration used when none is configured.
const DefaultFrameBudget = 33 * time.Millisecond

// InputSource yields the actions that arrived since the previous poll.
// Poll must not block; it returns an empty slice when nothing is pending.
type InputSource interface {
	Poll() []core.Action
}

// Renderer draws one snapshot per tick.
type Renderer interface {
	Render(snap Snapshot)
}

// Loop drives a State at a fixed frame rate: poll input, tick, render, sleep.
// It moves from running to stopped exactly once, when a tick returns GameOver.
type Loop struct {
	state    *State
	input    InputSource
	renderer Renderer
	frame    time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
	logger   *log.Logger
	stopped  bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFrameBudget sets the duration of one frame.
func WithFrameBudget(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.frame = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) { l.now = now }
}

// WithSleep replaces time.Sleep, for tests and headless runs.
func WithSleep(sleep func(time.Duration)) LoopOption {
	return func(l *Loop) { l.sleep = sleep }
}

// WithLogger sets the logger for session events.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop creates a loop that owns state for the rest of the session.
func NewLoop(state *State, input InputSource, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		state:    state,
		input:    input,
		renderer: renderer,
		frame:    DefaultFrameBudget,
		now:      time.Now,
		sleep:    time.Sleep,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Coalesce reduces one frame's worth of actions to a single tick input.
// Quit wins over everything; otherwise the last movement action counts.
// Pause and unknown actions are ignored.
func Coalesce(actions []core.Action) core.Action {
	result := core.ActionNone
	for _, a := range actions {
		if a == core.ActionQuit {
			return core.ActionQuit
		}
		if a.IsMovement() {
			result = a
		}
	}
	return result
}

// Step runs one frame body without sleeping: poll, tick, render.
// After the loop has stopped it does nothing and returns GameOver.
func (l *Loop) Step() TickResult {
	if l.stopped {
		return GameOver
	}
	return l.step(l.input.Poll())
}

func (l *Loop) step(actions []core.Action) TickResult {
	in := Coalesce(actions)
	result := l.state.Tick(in)

	snap := l.state.Snapshot()
	l.renderer.Render(snap)

	l.logger.Debug("tick",
		"tick", snap.Tick,
		"input", in,
		"player", snap.PlayerCol,
		"obstacles", len(snap.Obstacles),
	)

	if result == GameOver {
		l.stopped = true
		l.logger.Info("game over",
			"reason", snap.Reason,
			"score", snap.Score,
			"ticks", snap.Tick,
		)
	}
	return result
}

// Run executes frames until the session stops and returns the final score.
// The context is checked only when input is polled: cancelling it ends the
// session on the next frame, it never interrupts a frame's sleep.
func (l *Loop) Run(ctx context.Context) int {
	w, h := l.state.Viewport()
	l.logger.Info("session started", "width", w, "height", h, "frame", l.frame)

	for !l.stopped {
		start := l.now()

		actions := l.input.Poll()
		if ctx.Err() != nil {
			actions = append(actions, core.ActionQuit)
		}
		if l.step(actions) == GameOver {
			break
		}

		if rest := l.frame - l.now().Sub(start); rest > 0 {
			l.sleep(rest)
		}
	}
	return l.state.Score()
}

// Stopped reports whether the loop has reached its terminal state.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// State returns the session the loop drives.
func (l *Loop) State() *State {
	return l.state
}

// FrameBudget returns the configured frame duration.
func (l *Loop) FrameBudget() time.Duration {
	return l.frame
}
