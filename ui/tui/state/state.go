package state

import (
	"foodcatalog/internal/browse"
	"foodcatalog/internal/navigation"
	"foodcatalog/internal/output"
)

// AppState holds everything the views read.
type AppState struct {
	Browse     *browse.State
	Nav        *navigation.Stack
	Format     output.Formatting
	ItemCursor int
	Err        error
}

// New starts on the catalog with the first category selected.
func New(b *browse.State, f output.Formatting) AppState {
	return AppState{
		Browse: b,
		Nav:    navigation.NewStack(),
		Format: f,
	}
}

func (s AppState) CurrentPage() navigation.Page {
	return s.Nav.Current().Page
}

// Details returns the payload of the open details screen, if any.
func (s AppState) Details() (navigation.Payload, bool) {
	cur := s.Nav.Current()
	if cur.Page != navigation.PageDetails || cur.Payload == nil {
		return navigation.Payload{}, false
	}
	return *cur.Payload, true
}
