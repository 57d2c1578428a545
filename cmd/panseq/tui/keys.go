package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the form screen.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding
	Add        key.Binding
	AddAll     key.Binding
	Remove     key.Binding
	RemoveAll  key.Binding
	NextList   key.Binding
	PrevList   key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Submit     key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
	SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	SelectNone: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
	Add:        key.NewBinding(key.WithKeys(">", "right", "l"), key.WithHelp(">", "add")),
	AddAll:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "add all")),
	Remove:     key.NewBinding(key.WithKeys("<", "left", "h"), key.WithHelp("<", "remove")),
	RemoveAll:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "remove all")),
	NextList:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "next list")),
	PrevList:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-Tab", "prev list")),
	NextTab:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
	PrevTab:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev tab")),
	Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "submit")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
}
