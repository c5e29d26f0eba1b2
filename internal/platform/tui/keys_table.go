package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// KeysTable renders the key bindings as a static table for the keys command.
func KeysTable(k KeyMap) string {
	entries := []struct {
		b    key.Binding
		when string
	}{
		{k.Rotate, "playing"},
		{k.Left, "playing"},
		{k.Right, "playing"},
		{k.SoftDrop, "playing"},
		{k.HardDrop, "playing"},
		{k.Easy, "playing"},
		{k.Restart, "always"},
		{k.Quit, "always"},
		{k.Retry, "game over"},
		{k.Decline, "game over"},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		h := e.b.Help()
		rows = append(rows, table.Row{h.Key, h.Desc, e.when})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Key", Width: 8},
			{Title: "Action", Width: 12},
			{Title: "When", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
