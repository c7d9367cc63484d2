package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
// It mirrors defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Viewport: ViewportConfig{
			Width:  50,
			Height: 20,
		},
		Spawn: SpawnConfig{
			Odds:     5,
			Sentinel: 0,
		},
		Player: PlayerConfig{
			Movement: MovementDiscrete,
		},
		Loop: LoopConfig{
			FrameMillis: 33,
		},
		Glyphs: Glyphs{
			Player:   "^",
			Obstacle: "#",
			Crash:    "X",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
