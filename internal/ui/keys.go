package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap describes the bindings shown in the help footer and the help
// page. Key handling itself lives in the input modes.
type KeyMap struct {
	Move     key.Binding
	Open     key.Binding
	Page     key.Binding
	Search   key.Binding
	Suggest  key.Binding
	Submit   key.Binding
	Preview  key.Binding
	Dismiss  key.Binding
	Examples key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the bindings of the table, search and modal modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"),
			key.WithHelp("←↓↑→/hjkl", "move"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "element details"),
		),
		Page: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "element page"),
		),
		Search: key.NewBinding(
			key.WithKeys("tab", "/", "s"),
			key.WithHelp("tab,/", "search"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("up", "down", "ctrl+p", "ctrl+n"),
			key.WithHelp("↑/↓", "pick suggestion"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open suggestion or search"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "preview suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Examples: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "example search"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
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

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.Search, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Open, k.Page, k.Examples},
		{k.Search, k.Suggest, k.Submit, k.Preview, k.Dismiss},
		{k.Theme, k.Help, k.Quit},
	}
}
