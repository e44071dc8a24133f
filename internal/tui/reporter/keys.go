package reporter

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the report form.
type KeyMap struct {
	NextField   key.Binding
	PrevField   key.Binding
	PrevType    key.Binding
	NextType    key.Binding
	AddImage    key.Binding
	RemoveImage key.Binding
	Submit      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		PrevType: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev type"),
		),
		NextType: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next type"),
		),
		AddImage: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "attach image"),
		),
		RemoveImage: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove last image"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.PrevType, k.NextType},
		{k.AddImage, k.RemoveImage},
		{k.Submit, k.Quit},
	}
}
