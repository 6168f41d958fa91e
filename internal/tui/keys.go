package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Delete     key.Binding
	Grab       key.Binding
	Drop       key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Clear      key.Binding
	View       key.Binding
	Today      key.Binding
	Week       key.Binding
	Month      key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Help       key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Add:        key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Grab:       key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "grab")),
		Drop:       key.NewBinding(key.WithKeys("enter", "m", " "), key.WithHelp("enter", "drop")),
		MoveUp:     key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Clear:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		View:       key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "board/stats")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Week:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "7 days")),
		Month:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "30 days")),
		NextFilter: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next window")),
		PrevFilter: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous window")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:     key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardHelp and statsHelp implement help.KeyMap for the footer of each view.
type boardHelp struct{ k keyMap }

func (h boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Add, h.k.Delete, h.k.Grab, h.k.View, h.k.Help, h.k.Quit}
}

func (h boardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Add, h.k.Delete},
		{h.k.Grab, h.k.Drop, h.k.MoveUp, h.k.MoveDown},
		{h.k.Clear, h.k.View, h.k.Help, h.k.Quit},
	}
}

type grabHelp struct{ k keyMap }

func (h grabHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Drop, h.k.Cancel}
}

func (h grabHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type statsHelp struct{ k keyMap }

func (h statsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Today, h.k.Week, h.k.Month, h.k.PrevFilter, h.k.NextFilter, h.k.View, h.k.Help, h.k.Quit}
}

func (h statsHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
