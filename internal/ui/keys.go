package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"reminders/internal/config"
)

type keyMap struct {
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:      binding(k.Quit, "quit"),
		Up:        binding(k.Up, "up"),
		Down:      binding(k.Down, "down"),
		Confirm:   binding(k.Confirm, "open"),
		Back:      binding(k.Back, "back"),
		Cancel:    binding(k.Cancel, "cancel"),
		Backspace: binding(k.Backspace, "delete char"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}
