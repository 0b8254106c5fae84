package views

import (
	"foodcatalog/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	AnimCursor float64
	ChartView  string
	HelpView   string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
