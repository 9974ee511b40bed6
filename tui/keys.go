package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digit      key.Binding
	DoubleZero key.Binding
	Backspace  key.Binding
	Advance    key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Float      key.Binding
	Reset      key.Binding
	Export     key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "qty"),
		),
		DoubleZero: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "00"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "erase"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "reset"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.DoubleZero, k.Advance, k.Float, k.Reset, k.Export, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.DoubleZero, k.Backspace},
		{k.Up, k.Down, k.Toggle, k.Advance},
		{k.Float, k.Reset, k.Export, k.Quit},
	}
}
