// Package config provides YAML-based game configuration for dodger: the
// schema, the embedded defaults, loading and validation.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// DodgeConfig contains all configuration for a dodger session.
type DodgeConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Player   PlayerConfig   `yaml:"player"`
	Loop     LoopConfig     `yaml:"loop"`
	Glyphs   Glyphs         `yaml:"glyphs"`
}

// ViewportConfig defines the playfield size in character cells.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how often obstacles appear.
// Each tick one value is drawn from [0, Odds); a match with Sentinel spawns.
type SpawnConfig struct {
	Odds     int `yaml:"odds"`
	Sentinel int `yaml:"sentinel"`
}

// Movement selects how directional input moves the player.
type Movement string

const (
	MovementDiscrete Movement = "discrete" // one column per tick the key is held
	MovementVelocity Movement = "velocity" // keep drifting until stopped or reversed
)

// PlayerConfig defines player behaviour.
type PlayerConfig struct {
	Movement Movement `yaml:"movement"`
}

// LoopConfig defines frame timing.
type LoopConfig struct {
	FrameMillis int `yaml:"frame_ms"`
}

// Glyphs defines the characters used to draw entities.
type Glyphs struct {
	Player   string `yaml:"player"`
	Obstacle string `yaml:"obstacle"`
	Crash    string `yaml:"crash"`
}

// PlayerRune returns the player glyph as a rune.
func (g Glyphs) PlayerRune() rune { return firstRune(g.Player) }

// ObstacleRune returns the obstacle glyph as a rune.
func (g Glyphs) ObstacleRune() rune { return firstRune(g.Obstacle) }

// CrashRune returns the crash marker glyph as a rune.
func (g Glyphs) CrashRune() rune { return firstRune(g.Crash) }

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// FrameBudget returns the configured frame duration.
func (c DodgeConfig) FrameBudget() time.Duration {
	return time.Duration(c.Loop.FrameMillis) * time.Millisecond
}

// Validate checks that the configuration describes a playable session.
func (c DodgeConfig) Validate() error {
	switch {
	case c.Viewport.Width < 1:
		return fmt.Errorf("%w: viewport.width must be at least 1, got %d", ErrInvalid, c.Viewport.Width)
	case c.Viewport.Height < 2:
		// Obstacles spawn on row 0 and collide on row height-1; they must differ.
		return fmt.Errorf("%w: viewport.height must be at least 2, got %d", ErrInvalid, c.Viewport.Height)
	case c.Spawn.Odds < 1:
		return fmt.Errorf("%w: spawn.odds must be at least 1, got %d", ErrInvalid, c.Spawn.Odds)
	case c.Spawn.Sentinel < 0 || c.Spawn.Sentinel >= c.Spawn.Odds:
		return fmt.Errorf("%w: spawn.sentinel must be in [0, %d), got %d", ErrInvalid, c.Spawn.Odds, c.Spawn.Sentinel)
	case c.Player.Movement != MovementDiscrete && c.Player.Movement != MovementVelocity:
		return fmt.Errorf("%w: player.movement must be %q or %q, got %q",
			ErrInvalid, MovementDiscrete, MovementVelocity, c.Player.Movement)
	case c.Loop.FrameMillis < 1:
		return fmt.Errorf("%w: loop.frame_ms must be at least 1, got %d", ErrInvalid, c.Loop.FrameMillis)
	}

	glyphs := []struct{ name, value string }{
		{"player", c.Glyphs.Player},
		{"obstacle", c.Glyphs.Obstacle},
		{"crash", c.Glyphs.Crash},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: glyphs.%s must be a single character, got %q", ErrInvalid, g.name, g.value)
		}
	}
	return nil
}
