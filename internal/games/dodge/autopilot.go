package dodge

import (
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// DefaultLookahead is how many rows above the player the autopilot watches.
const DefaultLookahead = 4

// Autopilot is an InputSource that steers the player away from falling
// obstacles. It reads the state it plays but never mutates it.
type Autopilot struct {
	state     *State
	lookahead int
}

// NewAutopilot creates an autopilot for state. A non-positive lookahead
// selects DefaultLookahead.
func NewAutopilot(state *State, lookahead int) *Autopilot {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return &Autopilot{state: state, lookahead: lookahead}
}

// Poll returns at most one action: the move into the safest reachable column.
func (a *Autopilot) Poll() []core.Action {
	if !a.state.Running() {
		return nil
	}

	w, h := a.state.Viewport()
	player := a.state.Player()
	danger := a.danger(w, h)

	// Candidates in preference order: stay, then the side closer to the centre.
	steps := []int{0, -1, 1}
	if player.Col < w/2 {
		steps = []int{0, 1, -1}
	}

	best, bestDanger := 0, -1
	for _, step := range steps {
		col := player.Col + step
		if col < 0 || col >= w {
			continue
		}
		if bestDanger < 0 || danger[col] < bestDanger {
			best, bestDanger = step, danger[col]
		}
	}

	switch {
	case best < 0:
		return []core.Action{core.ActionLeft}
	case best > 0:
		return []core.Action{core.ActionRight}
	case player.Velocity != 0:
		return []core.Action{core.ActionStop}
	}
	return nil
}

// danger scores each column by the obstacles about to reach the bottom row.
// An obstacle on row h-2 lands on the player's row next tick and dominates
// every other term.
func (a *Autopilot) danger(w, h int) []int {
	danger := make([]int, w)
	for _, o := range a.state.Field().Obstacles() {
		dist := h - 2 - o.Row // ticks until it reaches row h-1, minus one
		if dist < 0 || dist >= a.lookahead {
			continue
		}
		if dist == 0 {
			danger[o.Col] += 1000
			continue
		}
		danger[o.Col] += a.lookahead - dist
	}
	return danger
}
