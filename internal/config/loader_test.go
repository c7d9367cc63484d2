package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded default %+v differs from DefaultDodgeConfig() %+v", cfg, DefaultDodgeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, `
viewport:
  width: 20
player:
  movement: velocity
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Viewport.Width != 20 {
		t.Errorf("Viewport.Width = %d, expected 20", cfg.Viewport.Width)
	}
	if cfg.Player.Movement != MovementVelocity {
		t.Errorf("Player.Movement = %q, expected velocity", cfg.Player.Movement)
	}
	// Untouched keys keep their defaults
	if cfg.Viewport.Height != 20 {
		t.Errorf("Viewport.Height = %d, expected default 20", cfg.Viewport.Height)
	}
	if cfg.Spawn.Odds != 5 || cfg.Spawn.Sentinel != 0 {
		t.Errorf("Spawn = %+v, expected defaults", cfg.Spawn)
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("empty file should keep defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped ErrNotExist, got %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "viewport:\n  widht: 30\n"))
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "viewport:\n  height: 1\n"))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgeConfig)
	}{
		{"zero width", func(c *DodgeConfig) { c.Viewport.Width = 0 }},
		{"single row", func(c *DodgeConfig) { c.Viewport.Height = 1 }},
		{"zero odds", func(c *DodgeConfig) { c.Spawn.Odds = 0 }},
		{"negative sentinel", func(c *DodgeConfig) { c.Spawn.Sentinel = -1 }},
		{"sentinel out of range", func(c *DodgeConfig) { c.Spawn.Sentinel = 5 }},
		{"unknown movement", func(c *DodgeConfig) { c.Player.Movement = "teleport" }},
		{"zero frame", func(c *DodgeConfig) { c.Loop.FrameMillis = 0 }},
		{"empty glyph", func(c *DodgeConfig) { c.Glyphs.Player = "" }},
		{"long glyph", func(c *DodgeConfig) { c.Glyphs.Obstacle = "##" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	// Edge values that are still playable
	cfg := DefaultDodgeConfig()
	cfg.Viewport.Width = 1
	cfg.Viewport.Height = 2
	cfg.Spawn.Odds = 1
	cfg.Glyphs.Crash = "✖"
	if err := cfg.Validate(); err != nil {
		t.Errorf("minimal config should validate: %v", err)
	}
}

func TestGlyphRunes(t *testing.T) {
	g := Glyphs{Player: "^", Obstacle: "▓", Crash: "X"}
	if g.PlayerRune() != '^' || g.ObstacleRune() != '▓' || g.CrashRune() != 'X' {
		t.Errorf("unexpected runes: %q %q %q", g.PlayerRune(), g.ObstacleRune(), g.CrashRune())
	}
}

func TestFrameBudget(t *testing.T) {
	cfg := DefaultDodgeConfig()
	if cfg.FrameBudget() != 33*time.Millisecond {
		t.Errorf("FrameBudget() = %v, expected 33ms", cfg.FrameBudget())
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Viewport.Width = 31
	cfg.Player.Movement = MovementVelocity

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "frame_ms: 33") {
		t.Errorf("expected yaml keys in output, got:\n%s", data)
	}

	loaded, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, expected %+v", loaded, cfg)
	}
}

func TestValidateNamesFirstBadGlyph(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Glyphs.Player = ""
	cfg.Glyphs.Obstacle = "##"
	cfg.Glyphs.Crash = "xx"

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "glyphs.player") {
			t.Fatalf("Validate() = %v, expected the player glyph to be reported", err)
		}
	}
}
