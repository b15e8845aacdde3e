package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("right", "n", "l", " "), key.WithHelp("→/n", "next token")),
		Prev:  key.NewBinding(key.WithKeys("left", "p", "h"), key.WithHelp("←/p", "previous token")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Reset, k.Quit}
}
