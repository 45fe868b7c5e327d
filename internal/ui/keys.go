package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	NextSort   key.Binding
	PrevSort   key.Binding
	Open       key.Binding
	Close      key.Binding
	Like       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
	PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
	Up:         key.NewBinding(key.WithKeys("up", "k")),
	Down:       key.NewBinding(key.WithKeys("down", "j")),
	Left:       key.NewBinding(key.WithKeys("left", "h")),
	Right:      key.NewBinding(key.WithKeys("right", "l")),
	NextFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "filter SDG")),
	PrevFilter: key.NewBinding(key.WithKeys("F")),
	NextSort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "sort")),
	PrevSort:   key.NewBinding(key.WithKeys("S")),
	Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Close:      key.NewBinding(key.WithKeys("esc", "q", "enter", "backspace"), key.WithHelp("esc", "close")),
	Like:       key.NewBinding(key.WithKeys("+", "L"), key.WithHelp("+", "like")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// gridKeys and overlayKeys implement help.KeyMap for the footer.
type gridKeys struct{ likes bool }

func (g gridKeys) ShortHelp() []key.Binding {
	b := []key.Binding{keys.NextTab, keys.NextFilter, keys.NextSort, keys.Open}
	if g.likes {
		b = append(b, keys.Like)
	}
	return append(b, keys.Quit)
}

func (g gridKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.ShortHelp()}
}

type overlayKeys struct{ likes bool }

func (o overlayKeys) ShortHelp() []key.Binding {
	if o.likes {
		return []key.Binding{keys.Close, keys.Like}
	}
	return []key.Binding{keys.Close}
}

func (o overlayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{o.ShortHelp()}
}
