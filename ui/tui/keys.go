package tui

import (
	"foodcatalog/internal/navigation"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit key.Binding

	// Catalog
	PrevCategory key.Binding
	NextCategory key.Binding
	Up           key.Binding
	Down         key.Binding
	Open         key.Binding

	// Details
	Back  key.Binding
	Order key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next category"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc", "backspace"),
			key.WithHelp("b/esc", "back"),
		),
		Order: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "place on order"),
		),
	}
}

// pageHelp adapts the KeyMap to bubbles/help for one page.
type pageHelp struct {
	keys KeyMap
	page navigation.Page
}

func (h pageHelp) ShortHelp() []key.Binding {
	if h.page == navigation.PageDetails {
		return []key.Binding{h.keys.Back, h.keys.Order, h.keys.Quit}
	}
	return []key.Binding{h.keys.PrevCategory, h.keys.NextCategory, h.keys.Up, h.keys.Down, h.keys.Open, h.keys.Quit}
}

func (h pageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
