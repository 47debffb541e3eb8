package desk

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the desk key bindings. Everything else goes to the prompt.
type KeyMap struct {
	Submit  key.Binding
	Sharpen key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Sharpen: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sharpen")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Sharpen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
