package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds the game's key bindings. Every key without a binding
// maps to core.ActionOther, which pauses and resumes.
type KeyMap struct {
	Flap key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "flap / start / restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionJump
	default:
		return core.ActionOther
	}
}

// HelpLine returns a one-line summary of the bindings.
func (k KeyMap) HelpLine() string {
	line := ""
	for _, b := range []key.Binding{k.Flap, k.Quit} {
		if line != "" {
			line += "  "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line + "  any key pause"
}
