package navigation

import tea "github.com/charmbracelet/bubbletea"

type Page int

const (
	PageCatalog Page = iota
	PageDetails
)

func (p Page) String() string {
	switch p {
	case PageCatalog:
		return "catalog"
	case PageDetails:
		return "details"
	default:
		return "unknown"
	}
}

// Route is one entry of the navigation history. Payload is nil for the catalog.
type Route struct {
	Page    Page
	Payload *Payload
}

// Stack owns every payload until its route is popped.
// The root route is never popped.
type Stack struct {
	routes []Route
}

// NewStack returns a stack rooted at the catalog screen.
func NewStack() *Stack {
	return &Stack{routes: []Route{{Page: PageCatalog}}}
}

// Push opens the details screen for p.
func (s *Stack) Push(p Payload) {
	owned := p.Clone()
	s.routes = append(s.routes, Route{Page: PageDetails, Payload: &owned})
}

// Back discards the top route. It reports false when already at the root.
func (s *Stack) Back() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes[len(s.routes)-1] = Route{}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Current returns the top route.
func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Depth is the number of routes, root included.
func (s *Stack) Depth() int {
	return len(s.routes)
}

// BackReason records which control dismissed the details screen.
// Both reasons have the same effect.
type BackReason int

const (
	BackButton BackReason = iota
	PlaceOrder
)

// OpenDetailsMsg hands a payload to the details screen.
type OpenDetailsMsg struct {
	Payload Payload
}

// NavigateBackMsg dismisses the current screen. Nothing is returned to the caller.
type NavigateBackMsg struct {
	Reason BackReason
}

// OpenDetails returns a command delivering OpenDetailsMsg.
func OpenDetails(p Payload) tea.Cmd {
	return func() tea.Msg {
		return OpenDetailsMsg{Payload: p}
	}
}

// GoBack returns a command delivering NavigateBackMsg.
func GoBack(reason BackReason) tea.Cmd {
	return func() tea.Msg {
		return NavigateBackMsg{Reason: reason}
	}
}
