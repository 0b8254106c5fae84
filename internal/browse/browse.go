// Package browse holds the catalog screen's selection state.
package browse

import (
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/navigation"
)

// State is owned by the catalog screen. selected is always a valid category index.
type State struct {
	catalog  *catalog.Catalog
	selected int
}

// New starts with the first category selected.
func New(c *catalog.Catalog) *State {
	return &State{catalog: c}
}

// Catalog returns the table being browsed.
func (s *State) Catalog() *catalog.Catalog {
	return s.catalog
}

// Selected returns the active category index.
func (s *State) Selected() int {
	return s.selected
}

// SelectCategory activates category i. Out-of-range indices are ignored and
// reported with false.
func (s *State) SelectCategory(i int) bool {
	if i < 0 || i >= s.catalog.Len() {
		return false
	}
	s.selected = i
	return true
}

// SelectedCategory returns a copy of the active category.
func (s *State) SelectedCategory() catalog.Category {
	cat, _ := s.catalog.Category(s.selected)
	return cat
}

// VisibleItems recomputes the items of the active category on every call.
func (s *State) VisibleItems() []catalog.Item {
	return s.catalog.Items(s.selected)
}

// OpenDetails builds the navigation payload for item.
func (s *State) OpenDetails(item catalog.Item) (navigation.Payload, error) {
	return navigation.NewPayload(item)
}

// OpenVisible builds the payload for the visible item at position i.
func (s *State) OpenVisible(i int) (navigation.Payload, bool, error) {
	items := s.VisibleItems()
	if i < 0 || i >= len(items) {
		return navigation.Payload{}, false, nil
	}
	p, err := s.OpenDetails(items[i])
	return p, true, err
}
