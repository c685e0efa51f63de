package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	PickTrip key.Binding
	NextTrip key.Binding
	PrevTrip key.Binding
	Export   key.Binding
	Reset    key.Binding
	Help     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.PickTrip, k.Export, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.PickTrip, k.PrevTrip, k.NextTrip},
		{k.Export, k.Reset, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		PickTrip: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "choose trip"),
		),
		NextTrip: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next trip"),
		),
		PrevTrip: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev trip"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export png"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
