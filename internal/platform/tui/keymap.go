package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/input"
)

// KeyMap defines the key bindings of the clicker.
// It resolves Bubble Tea key names for the input reader and feeds the help view.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Deselect  key.Binding
	Exit      key.Binding
	Select    key.Binding
	ClickDown key.Binding
	ClickUp   key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:        binding(cfg.Up, "prev upgrade"),
		Down:      binding(cfg.Down, "next upgrade"),
		Deselect:  binding(cfg.Deselect, "deselect"),
		Exit:      binding(cfg.Exit, "quit"),
		Select:    binding(cfg.Select, "buy"),
		ClickDown: binding(cfg.ClickDown, "press"),
		ClickUp:   binding(cfg.ClickUp, "release"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// MapKey translates a key name to the token the input reader acts on.
func (k KeyMap) MapKey(name string) input.Token {
	switch {
	case key.Matches(keyName(name), k.ClickDown):
		return input.Token{Held: true}
	case key.Matches(keyName(name), k.Up):
		return input.Token{Action: core.ActionUp}
	case key.Matches(keyName(name), k.Down):
		return input.Token{Action: core.ActionDown}
	case key.Matches(keyName(name), k.Deselect):
		return input.Token{Action: core.ActionDeselect}
	case key.Matches(keyName(name), k.Exit):
		return input.Token{Action: core.ActionExit}
	case key.Matches(keyName(name), k.Select):
		return input.Token{Action: core.ActionSelect}
	}
	// ClickUp and unbound keys both read as a released click button
	return input.Token{}
}

// keyName adapts a raw key name to key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ClickDown, k.ClickUp, k.Up, k.Down, k.Select, k.Deselect, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ClickDown, k.ClickUp},
		{k.Up, k.Down, k.Select, k.Deselect},
		{k.Exit},
	}
}
