package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// KeyMap defines the key bindings for a game session.
// It also implements help.KeyMap for the footer.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Stop  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings for the given movement model.
// The stop binding is only enabled for velocity movement.
func DefaultKeyMap(movement config.Movement) KeyMap {
	km := KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("up", "down", "s"),
			key.WithHelp("↑/↓/s", "stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
	km.Stop.SetEnabled(movement == config.MovementVelocity)
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Stop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Pause, k.Quit},
	}
}

// Action translates a key message to a game action.
// Unbound keys map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
