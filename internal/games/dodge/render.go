package dodge

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// ScreenSize returns the screen dimensions needed to draw a width x height
// playfield: one border cell on each side plus a HUD line below.
func ScreenSize(width, height int) (int, int) {
	return width + 2, height + 3
}

// Render draws a snapshot into dst. Playfield cell (col, row) lands at
// screen cell (col+1, row+1), inside a border; the score line sits below it.
func Render(dst *core.Screen, snap Snapshot, glyphs config.Glyphs) {
	dst.Clear()

	dst.DrawBox(core.NewRect(0, 0, snap.Width+2, snap.Height+2), core.ColorGray)

	for _, o := range snap.Obstacles {
		dst.SetColored(o.Col+1, o.Row+1, glyphs.ObstacleRune(), core.ColorRed)
	}

	if snap.Crash != nil {
		dst.SetColored(snap.Crash.Col+1, snap.Crash.Row+1, glyphs.CrashRune(), core.ColorBrightRed)
	} else {
		dst.SetColored(snap.PlayerCol+1, snap.PlayerRow+1, glyphs.PlayerRune(), core.ColorBrightYellow)
	}

	hud := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(0, snap.Height+2, hud, core.ColorBrightWhite)

	if !snap.Running {
		DrawBanner(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", snap.Score))
	}
}

// DrawBanner draws a boxed two-line message in the middle of the playfield.
func DrawBanner(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorDefault)
	dst.DrawRect(box.Inset(1), ' ')

	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Snapshot)

// Render calls f(snap).
func (f RendererFunc) Render(snap Snapshot) {
	f(snap)
}

// TextRenderer writes every frame as plain text, for headless runs.
type TextRenderer struct {
	w      io.Writer
	glyphs config.Glyphs
	screen *core.Screen
	err    error
}

// NewTextRenderer creates a renderer that writes frames to w.
func NewTextRenderer(w io.Writer, glyphs config.Glyphs) *TextRenderer {
	return &TextRenderer{w: w, glyphs: glyphs}
}

// Render draws the snapshot and writes it, preceded by a tick header.
// The first write error is kept and later frames are skipped.
func (r *TextRenderer) Render(snap Snapshot) {
	if r.err != nil {
		return
	}
	if r.screen == nil {
		r.screen = core.NewScreen(ScreenSize(snap.Width, snap.Height))
	}
	Render(r.screen, snap, r.glyphs)
	_, r.err = fmt.Fprintf(r.w, "tick %d\n%s\n\n", snap.Tick, r.screen.String())
}

// Err returns the first write error, if any.
func (r *TextRenderer) Err() error {
	return r.err
}
