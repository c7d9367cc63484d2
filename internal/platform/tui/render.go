package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/games/dodge"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// ScreenRenderer draws snapshots into a screen buffer owned by the terminal
// session. It implements dodge.Renderer.
type ScreenRenderer struct {
	screen *core.Screen
	glyphs config.Glyphs
	last   dodge.Snapshot
	frames int
}

// NewScreenRenderer creates a renderer for a width x height playfield.
func NewScreenRenderer(width, height int, glyphs config.Glyphs) *ScreenRenderer {
	return &ScreenRenderer{
		screen: core.NewScreen(dodge.ScreenSize(width, height)),
		glyphs: glyphs,
	}
}

// Render draws snap into the screen buffer.
func (r *ScreenRenderer) Render(snap dodge.Snapshot) {
	dodge.Render(r.screen, snap, r.glyphs)
	r.last = snap
	r.frames++
}

// Screen returns the buffer frames are drawn into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Last returns the most recently rendered snapshot.
func (r *ScreenRenderer) Last() dodge.Snapshot {
	return r.last
}

// Frames returns how many snapshots have been rendered.
func (r *ScreenRenderer) Frames() int {
	return r.frames
}
