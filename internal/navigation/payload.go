// Package navigation carries the handoff from the catalog screen to the details screen.
package navigation

import (
	"errors"
	"fmt"

	"foodcatalog/internal/catalog"
)

// ErrIncompletePayload is matched by every PayloadError.
var ErrIncompletePayload = errors.New("incomplete details payload")

// PayloadError names the first required field missing from an item.
type PayloadError struct {
	Item  string
	Field string
}

func (e *PayloadError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("details payload: missing %s", e.Field)
	}
	return fmt.Sprintf("details payload for %q: missing %s", e.Item, e.Field)
}

func (e *PayloadError) Is(target error) bool {
	return target == ErrIncompletePayload
}

// Payload is an owned copy of one item's fields, built at the moment an item is opened.
type Payload struct {
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	Image          catalog.ImageRef   `json:"image"`
	Size           string             `json:"size"`
	Crust          string             `json:"crust"`
	Delivery       int                `json:"delivery"`
	Ingredients    []catalog.ImageRef `json:"ingredients"`
	IsTopOfTheWeek bool               `json:"is_top_of_the_week"`
}

// NewPayload copies item into a payload. It fails fast when a field the details
// screen renders is absent rather than letting a blank screen through.
func NewPayload(item catalog.Item) (Payload, error) {
	missing := func(field string) (Payload, error) {
		return Payload{}, &PayloadError{Item: item.Name, Field: field}
	}

	switch {
	case item.Name == "":
		return missing("name")
	case item.Image == "":
		return missing("image")
	case item.Size == "":
		return missing("size")
	case item.Crust == "":
		return missing("crust")
	case item.Delivery <= 0:
		return missing("delivery")
	case len(item.Ingredients) == 0:
		return missing("ingredients")
	}

	ingredients := make([]catalog.ImageRef, len(item.Ingredients))
	copy(ingredients, item.Ingredients)

	return Payload{
		Name:           item.Name,
		Price:          item.Price,
		Image:          item.Image,
		Size:           item.Size,
		Crust:          item.Crust,
		Delivery:       item.Delivery,
		Ingredients:    ingredients,
		IsTopOfTheWeek: item.IsTopOfTheWeek,
	}, nil
}

// Clone returns a copy that shares no memory with p.
func (p Payload) Clone() Payload {
	if p.Ingredients != nil {
		ing := make([]catalog.ImageRef, len(p.Ingredients))
		copy(ing, p.Ingredients)
		p.Ingredients = ing
	}
	return p
}
