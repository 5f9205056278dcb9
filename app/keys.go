package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the palette bindings. Show and Quit apply while the palette is
// hidden; the rest only while it is visible.
type KeyMap struct {
	Show      key.Binding
	Quit      key.Binding
	Hide      key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Show: key.NewBinding(
			key.WithKeys("ctrl+p", ":"),
			key.WithHelp("ctrl+p", "command palette"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Hide: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// PaletteKeys is the help.KeyMap shown under the open palette.
type PaletteKeys KeyMap

func (k PaletteKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Hide}
}

func (k PaletteKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Activate, k.Hide, k.ForceQuit}}
}

// HomeKeys is the help.KeyMap shown while the palette is hidden.
type HomeKeys KeyMap

func (k HomeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Show, k.Quit}
}

func (k HomeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
