package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/games/dodge"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Score: 7", core.ColorBrightWhite)
	s.SetColored(3, 1, '#', core.ColorRed)
	s.SetColored(4, 1, '^', core.Color(99))

	out := RenderScreen(s)
	assert.Contains(t, out, "Score: 7")
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "^", "unknown colors fall back to the default style")
	assert.Contains(t, out, "\n")
}

func TestScreenRenderer(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Viewport.Width, cfg.Viewport.Height = 10, 5

	r := NewScreenRenderer(10, 5, cfg.Glyphs)
	assert.Equal(t, 12, r.Screen().Width())
	assert.Equal(t, 8, r.Screen().Height())

	state := dodge.NewState(cfg, dodge.NewSequenceSource(1))
	state.Tick(core.ActionLeft)
	r.Render(state.Snapshot())

	assert.Equal(t, 1, r.Frames())
	assert.Equal(t, uint64(1), r.Last().Tick)
	assert.Equal(t, '^', r.Screen().Get(5, 5), "player at column 4 on the bottom row")
	assert.Contains(t, r.Screen().Row(7), "Score: 1")
}
