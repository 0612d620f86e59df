package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding shown in the help view.
type keyMap struct {
	Run   []key.Binding
	Clear key.Binding
	Wipe  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// newKeyMap binds 1..n to labels in menu order.
func newKeyMap(labels []string) keyMap {
	run := make([]key.Binding, len(labels))
	for i, label := range labels {
		k := string(rune('1' + i))
		run[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, label))
	}
	return keyMap{
		Run: run,
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear grid"),
		),
		Wipe: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Wipe, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Run, k.ShortHelp()}
}
