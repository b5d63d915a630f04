package pagedview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the paged view.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	First     key.Binding
	Last      key.Binding
	FlingFwd  key.Binding
	FlingBack key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
		FlingFwd: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fling forward"),
		),
		FlingBack: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "fling backward"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
