package gallery

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the gallery key bindings.
type KeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	LowDown  key.Binding
	LowUp    key.Binding
	HighDown key.Binding
	HighUp   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default gallery bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "toggle or choose"),
		),
		LowDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "lower low"),
		),
		LowUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "raise low"),
		),
		HighDown: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "lower high"),
		),
		HighUp: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "raise high"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
		{k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.LowDown, k.LowUp, k.HighDown, k.HighUp},
	}
}
