package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget owned by the controller. It renders like a
// tea.Model and is resized whenever the terminal changes size.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
	Resize(width, height int)
}
