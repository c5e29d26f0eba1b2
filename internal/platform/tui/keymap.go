package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Rotate   key.Binding
	Left     key.Binding
	Right    key.Binding
	SoftDrop key.Binding
	HardDrop key.Binding
	Easy     key.Binding
	Restart  key.Binding
	Quit     key.Binding

	// Answers to the game-over prompt, only enabled while it is shown.
	Retry   key.Binding
	Decline key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rotate: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "rotate"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Easy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easy mode"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Retry: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "try again"),
			key.WithDisabled(),
		),
		Decline: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "quit"),
			key.WithDisabled(),
		),
	}
}

// SetGameOver switches between the in-play bindings and the game-over prompt.
func (k *KeyMap) SetGameOver(over bool) {
	for _, b := range []*key.Binding{&k.Rotate, &k.Left, &k.Right, &k.SoftDrop, &k.HardDrop, &k.Easy} {
		b.SetEnabled(!over)
	}
	k.Retry.SetEnabled(over)
	k.Decline.SetEnabled(over)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Left, k.Right, k.SoftDrop, k.HardDrop, k.Easy, k.Retry, k.Decline, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rotate, k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.Easy, k.Restart, k.Quit},
		{k.Retry, k.Decline},
	}
}

// Bindings returns every binding in display order, enabled or not.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.Rotate, k.Left, k.Right, k.SoftDrop, k.HardDrop,
		k.Easy, k.Restart, k.Quit, k.Retry, k.Decline,
	}
}

// Action translates a key message to a game action. Disabled bindings never
// match, so the result depends on the last SetGameOver call.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Decline):
		return core.ActionQuit
	case key.Matches(msg, k.Restart), key.Matches(msg, k.Retry):
		return core.ActionRestart
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.Easy):
		return core.ActionToggleEasy
	}
	return core.ActionNone
}
