package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Echo                  key.Binding
	Cycle                 key.Binding
	Red, Green, Blue      key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Echo:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "echo")),
		Cycle: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next color")),
		Red:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "red +16")),
		Green: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "green +16")),
		Blue:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blue +16")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Echo, k.Cycle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Echo, k.Cycle, k.Red, k.Green, k.Blue},
		{k.Help, k.Quit},
	}
}
