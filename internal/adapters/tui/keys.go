package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list-mode bindings. The new-task form only reacts to
// tab, enter and esc and keeps its own handling.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	next     key.Binding
	prev     key.Binding
	status   key.Binding
	category key.Binding
	add      key.Binding
	toggle   key.Binding
	remove   key.Binding
	refresh  key.Binding
	theme    key.Binding
	help     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next page")),
		prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "prev page")),
		status:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status filter")),
		category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category filter")),
		add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new task")),
		toggle:   key.NewBinding(key.WithKeys("t", " "), key.WithHelp("t", "toggle done")),
		remove:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		theme:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dark mode")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.toggle, k.remove, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.next, k.prev},
		{k.status, k.category, k.refresh},
		{k.add, k.toggle, k.remove},
		{k.theme, k.help, k.quit},
	}
}
