// Package dodge implements the falling-obstacle dodging game: a player on the
// bottom row steps left and right while obstacles drop one row per tick.
//
// The package holds the whole tick engine (obstacle field, game state, frame
// loop) and has no terminal dependencies; input and drawing arrive through the
// InputSource and Renderer interfaces.
package dodge

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// TickResult reports whether the session continues after a tick.
type TickResult int

const (
	Continue TickResult = iota
	GameOver
)

// String returns a human-readable name for the result.
func (r TickResult) String() string {
	if r == GameOver {
		return "GameOver"
	}
	return "Continue"
}

// EndReason records why a session stopped.
type EndReason string

const (
	EndNone      EndReason = ""
	EndQuit      EndReason = "quit"
	EndCollision EndReason = "collision"
)

// Player is the entity the user steers along the bottom row.
type Player struct {
	Col      int // Column in [0, width)
	Velocity int // Drift per tick; only used by the velocity movement model
}

// State is one game session: the player, the obstacle field, the score and
// the running flag. It is owned by a single driver and mutated only by Tick.
type State struct {
	width    int
	height   int
	movement config.Movement

	player  Player
	field   *Field
	score   int
	running bool
	tick    uint64
	reason  EndReason
	crash   *Obstacle // Where the fatal collision happened, if any
}

// NewState starts a session for the given config, drawing randomness from rng.
// The config must have passed Validate.
func NewState(cfg config.DodgeConfig, rng RandomSource) *State {
	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	return &State{
		width:    w,
		height:   h,
		movement: cfg.Player.Movement,
		player:   Player{Col: w / 2},
		field:    NewField(w, h, cfg.Spawn.Odds, cfg.Spawn.Sentinel, rng),
		running:  true,
	}
}

// Tick advances the session by one frame using the coalesced input for that
// frame (core.ActionNone when nothing was pressed). The order is fixed:
// quit check, movement, advance, cull, spawn, collision, score.
//
// Once the session has stopped Tick changes nothing and keeps returning GameOver.
func (s *State) Tick(in core.Action) TickResult {
	if !s.running {
		return GameOver
	}

	if in == core.ActionQuit {
		s.stop(EndQuit)
		return GameOver
	}

	s.tick++
	s.move(in)

	s.field.Advance()
	s.field.Cull()
	s.field.SpawnMaybe()

	// The player sits on the last row, so only obstacles there can hit.
	if s.field.Hit(s.player.Col, s.height-1) {
		s.crash = &Obstacle{Col: s.player.Col, Row: s.height - 1}
		s.stop(EndCollision)
		return GameOver
	}

	s.score++
	return Continue
}

// move applies directional input according to the movement model.
func (s *State) move(in core.Action) {
	switch s.movement {
	case config.MovementVelocity:
		switch in {
		case core.ActionLeft:
			s.player.Velocity = -1
		case core.ActionRight:
			s.player.Velocity = 1
		case core.ActionStop:
			s.player.Velocity = 0
		}
		s.player.Col = core.Clamp(s.player.Col+s.player.Velocity, 0, s.width-1)

	default:
		switch in {
		case core.ActionLeft:
			s.player.Col = core.Clamp(s.player.Col-1, 0, s.width-1)
		case core.ActionRight:
			s.player.Col = core.Clamp(s.player.Col+1, 0, s.width-1)
		}
	}
}

func (s *State) stop(reason EndReason) {
	s.running = false
	s.reason = reason
}

// Running reports whether the session is still live.
func (s *State) Running() bool {
	return s.running
}

// Score returns the number of ticks survived.
func (s *State) Score() int {
	return s.score
}

// Player returns the player entity.
func (s *State) Player() Player {
	return s.player
}

// Field returns the obstacle field for read access.
func (s *State) Field() *Field {
	return s.field
}

// Ticks returns the number of ticks simulated, including the final one.
func (s *State) Ticks() uint64 {
	return s.tick
}

// Reason returns why the session stopped, or EndNone while running.
func (s *State) Reason() EndReason {
	return s.reason
}

// Viewport returns the playfield size.
func (s *State) Viewport() (width, height int) {
	return s.width, s.height
}
