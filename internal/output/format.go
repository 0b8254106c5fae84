package output

import (
	"strconv"
	"strings"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/navigation"
)

const (
	HeaderSubtitle   = "Food"
	HeaderTitle      = "Delivery"
	CategoriesTitle  = "Categories"
	PopularTitle     = "Popular"
	TopBadgeText     = "top of the week"
	IngredientsTitle = "Ingredients"
	OrderButtonLabel = "Place on Order"
)

// Formatting carries the symbols used when turning numbers into labels.
type Formatting struct {
	CurrencySymbol string
	DeliveryUnit   string
}

// UI/view-model types (no printing here)
type CategoryTab struct {
	Index    int
	Name     string
	Image    catalog.ImageRef
	Selected bool
}

type ItemCard struct {
	Index        int
	Name         string
	Weight       string
	Rating       float64
	Image        catalog.ImageRef
	ShowTopBadge bool
}

type CatalogView struct {
	Subtitle string
	Title    string
	Tabs     []CategoryTab
	Items    []ItemCard
}

type DetailsView struct {
	Name            string
	PriceLabel      string
	Image           catalog.ImageRef
	Size            string
	Crust           string
	DeliveryLabel   string
	Ingredients     []catalog.ImageRef
	StarHighlighted bool
	OrderLabel      string
}

// BuildCatalogView converts the selection state into UI-ready tabs and cards.
// Items are recomputed from the table on every call.
func BuildCatalogView(s *browse.State) CatalogView {
	c := s.Catalog()
	view := CatalogView{
		Subtitle: HeaderSubtitle,
		Title:    HeaderTitle,
	}

	for i, cat := range c.Categories() {
		view.Tabs = append(view.Tabs, CategoryTab{
			Index:    i,
			Name:     cat.Name,
			Image:    cat.Image,
			Selected: i == s.Selected(),
		})
	}

	for i, it := range s.VisibleItems() {
		view.Items = append(view.Items, ItemCard{
			Index:        i,
			Name:         it.Name,
			Weight:       it.Weight,
			Rating:       it.Rating,
			Image:        it.Image,
			ShowTopBadge: it.IsTopOfTheWeek,
		})
	}

	return view
}

// BuildDetailsView formats a navigation payload. Only field formatting happens here.
func BuildDetailsView(p navigation.Payload, f Formatting) DetailsView {
	ingredients := make([]catalog.ImageRef, len(p.Ingredients))
	copy(ingredients, p.Ingredients)

	return DetailsView{
		Name:            p.Name,
		PriceLabel:      FormatPrice(p.Price, f.CurrencySymbol),
		Image:           p.Image,
		Size:            p.Size,
		Crust:           p.Crust,
		DeliveryLabel:   FormatDelivery(p.Delivery, f.DeliveryUnit),
		Ingredients:     ingredients,
		StarHighlighted: p.IsTopOfTheWeek,
		OrderLabel:      OrderButtonLabel,
	}
}

// FormatPrice prints whole prices without decimals, e.g. "₹ 200" or "₹ 99.5".
func FormatPrice(price float64, symbol string) string {
	num := strconv.FormatFloat(price, 'f', -1, 64)
	if symbol == "" {
		return num
	}
	return symbol + " " + num
}

// FormatDelivery appends the unit to the delivery time, e.g. "30 min".
func FormatDelivery(minutes int, unit string) string {
	return strings.TrimSpace(strconv.Itoa(minutes) + " " + unit)
}

// FormatRating prints a rating with one decimal.
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func (v CatalogView) SelectedTab() *CategoryTab {
	for i := range v.Tabs {
		if v.Tabs[i].Selected {
			return &v.Tabs[i]
		}
	}
	return nil
}

func (v CatalogView) ItemByName(name string) *ItemCard {
	for i := range v.Items {
		if v.Items[i].Name == name {
			return &v.Items[i]
		}
	}
	return nil
}
