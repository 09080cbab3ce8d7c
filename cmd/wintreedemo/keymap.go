package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap collects the demo's key bindings, one Binding per command, mirroring
// how a bubbles component declares its own keymap.
type KeyMap struct {
	SplitRight key.Binding
	SplitBelow key.Binding
	Delete     key.Binding
	DeleteOthers key.Binding
	Other      key.Binding
	Enlarge    key.Binding
	Shrink     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Picker     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the demo's bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SplitRight: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "split right"),
		),
		SplitBelow: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "split below"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "delete window"),
		),
		DeleteOthers: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "delete other windows"),
		),
		Other: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "other window"),
		),
		Enlarge: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "enlarge window"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink window"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
		Picker: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "switch buffer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
