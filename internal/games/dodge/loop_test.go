package dodge

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// scriptedInput returns one batch of actions per poll, then nothing.
type scriptedInput struct {
	frames [][]core.Action
	polls  int
}

func (s *scriptedInput) Poll() []core.Action {
	s.polls++
	if len(s.frames) == 0 {
		return nil
	}
	next := s.frames[0]
	s.frames = s.frames[1:]
	return next
}

// fakeClock advances only when slept on or when told to.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected core.Action
	}{
		{"nothing pending", nil, core.ActionNone},
		{"single left", []core.Action{core.ActionLeft}, core.ActionLeft},
		{"last direction wins", []core.Action{core.ActionLeft, core.ActionRight, core.ActionLeft}, core.ActionLeft},
		{"stop counts as direction", []core.Action{core.ActionRight, core.ActionStop}, core.ActionStop},
		{"quit beats direction", []core.Action{core.ActionLeft, core.ActionQuit, core.ActionRight}, core.ActionQuit},
		{"pause is ignored", []core.Action{core.ActionRight, core.ActionPause}, core.ActionRight},
		{"unknown is ignored", []core.Action{core.Action(42)}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Coalesce(tc.actions))
		})
	}
}

func TestStepPollsTicksAndRenders(t *testing.T) {
	s := NewState(testConfig(20, 20), neverSpawn())
	input := &scriptedInput{frames: [][]core.Action{
		{core.ActionLeft, core.ActionLeft, core.ActionLeft},
		{},
		{core.ActionRight},
	}}

	var rendered []Snapshot
	loop := NewLoop(s, input, RendererFunc(func(snap Snapshot) {
		rendered = append(rendered, snap)
	}))

	for i := 0; i < 3; i++ {
		require.Equal(t, Continue, loop.Step())
	}

	require.Len(t, rendered, 3, "one render per tick")
	assert.Equal(t, 9, rendered[0].PlayerCol, "a burst of presses is one step")
	assert.Equal(t, 9, rendered[1].PlayerCol)
	assert.Equal(t, 10, rendered[2].PlayerCol)

	for i, snap := range rendered {
		assert.Equal(t, uint64(i+1), snap.Tick, "render %d shows its own tick", i)
		assert.Equal(t, i+1, snap.Score)
	}
}

func TestStepAfterStopIsInert(t *testing.T) {
	s := NewState(testConfig(20, 20), neverSpawn())
	input := &scriptedInput{frames: [][]core.Action{{core.ActionQuit}}}
	renders := 0
	loop := NewLoop(s, input, RendererFunc(func(Snapshot) { renders++ }))

	require.Equal(t, GameOver, loop.Step())
	assert.True(t, loop.Stopped())

	assert.Equal(t, GameOver, loop.Step())
	assert.Equal(t, 1, renders, "no renders after stop")
	assert.Equal(t, 1, input.polls, "no polls after stop")
}

func TestRunSleepsToFrameBoundary(t *testing.T) {
	const h = 20
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewState(testConfig(20, h), NewSequenceSource(0, 10, 1))

	renders := 0
	renderer := RendererFunc(func(Snapshot) {
		renders++
		clock.now = clock.now.Add(5 * time.Millisecond) // drawing takes time
	})

	loop := NewLoop(s, &scriptedInput{}, renderer,
		WithFrameBudget(33*time.Millisecond),
		WithClock(clock.Now),
		WithSleep(clock.Sleep),
	)

	score := loop.Run(context.Background())

	assert.Equal(t, h-1, score)
	assert.Equal(t, h, renders)
	assert.True(t, loop.Stopped())
	require.Len(t, clock.slept, h-1, "no sleep after the final frame")
	for _, d := range clock.slept {
		assert.Equal(t, 28*time.Millisecond, d)
	}
}

func TestRunSkipsSleepWhenOverBudget(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewState(testConfig(20, 20), neverSpawn())
	input := &scriptedInput{frames: [][]core.Action{{}, {}, {core.ActionQuit}}}

	renderer := RendererFunc(func(Snapshot) {
		clock.now = clock.now.Add(50 * time.Millisecond)
	})
	loop := NewLoop(s, input, renderer,
		WithFrameBudget(33*time.Millisecond),
		WithClock(clock.Now),
		WithSleep(clock.Sleep),
	)

	assert.Equal(t, 2, loop.Run(context.Background()))
	assert.Empty(t, clock.slept)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	s := NewState(testConfig(20, 20), neverSpawn())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renders := 0
	loop := NewLoop(s, &scriptedInput{frames: [][]core.Action{{core.ActionLeft}}},
		RendererFunc(func(Snapshot) { renders++ }),
		WithSleep(func(time.Duration) { t.Fatal("should not sleep") }),
	)

	assert.Equal(t, 0, loop.Run(ctx))
	assert.Equal(t, EndQuit, s.Reason())
	assert.Equal(t, 1, renders, "the quitting frame is still rendered")
	assert.Equal(t, 10, s.Player().Col)
}

func TestRunLogsSession(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	s := NewState(testConfig(20, 20), neverSpawn())
	loop := NewLoop(s, &scriptedInput{frames: [][]core.Action{{}, {core.ActionQuit}}},
		RendererFunc(func(Snapshot) {}),
		WithLogger(logger),
		WithSleep(func(time.Duration) {}),
	)
	loop.Run(context.Background())

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "reason=quit")
	assert.Contains(t, out, "score=1")
	assert.NotContains(t, out, "tick=", "per-tick logs are debug only")
}

func TestLoopDefaults(t *testing.T) {
	loop := NewLoop(NewState(testConfig(5, 5), neverSpawn()), &scriptedInput{}, RendererFunc(func(Snapshot) {}),
		WithFrameBudget(0), WithLogger(nil))
	assert.Equal(t, DefaultFrameBudget, loop.FrameBudget())
	assert.NotNil(t, loop.State())
}
