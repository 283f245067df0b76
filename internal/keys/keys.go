package keys

import "github.com/charmbracelet/bubbles/key"

type ListKeyMap struct {
	Details key.Binding
	Ssh     key.Binding
	Refresh key.Binding
	Choose  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func NewListKeyMap() *ListKeyMap {
	return &ListKeyMap{
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hosts"),
		),
		Ssh: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "ssh"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
