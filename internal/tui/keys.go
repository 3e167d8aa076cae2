package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tap  key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter", "t"),
			key.WithHelp("space/enter/click", "tap"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tap}, {k.Help, k.Quit}}
}
