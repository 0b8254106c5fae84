package console

import (
	"fmt"
	"io"
	"path"
	"strings"

	"foodcatalog/internal/catalog"
	"foodcatalog/internal/output"

	"github.com/charmbracelet/x/ansi"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// PrintCatalog renders the catalog screen for the selected category in a compact format.
func PrintCatalog(w io.Writer, view output.CatalogView) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, view.Subtitle, strings.ToUpper(view.Title), colorReset)

	// Tabs
	var tabs []string
	for _, tab := range view.Tabs {
		if tab.Selected {
			tabs = append(tabs, fmt.Sprintf("%s[%s]%s", colorYellow, tab.Name, colorReset))
			continue
		}
		tabs = append(tabs, tab.Name)
	}
	fmt.Fprintf(w, "%s─ %s%s %s\n", colorCyan, output.CategoriesTitle, colorReset, strings.Join(tabs, " "))

	selected := ""
	if tab := view.SelectedTab(); tab != nil {
		selected = tab.Name
	}
	fmt.Fprintf(w, "%s─ %s %s%s\n", colorCyan, output.PopularTitle, selected, colorReset)

	for _, card := range view.Items {
		label := ansi.Truncate(card.Name, 20, "...")
		dots := strings.Repeat("·", 22-ansi.StringWidth(label))

		badge := ""
		if card.ShowTopBadge {
			badge = fmt.Sprintf(" %s♛ %s%s", colorFor(true), output.TopBadgeText, colorReset)
		}

		fmt.Fprintf(w, "  %s%s %-8s ★ %s%s\n", label, colorGray+dots+colorReset, card.Weight, output.FormatRating(card.Rating), badge)
	}
	fmt.Fprintln(w)
}

// PrintDetails renders the details screen of one item.
func PrintDetails(w io.Writer, view output.DetailsView) {
	star := colorFor(view.StarHighlighted) + "★" + colorReset
	fmt.Fprintf(w, "%s %s%s%s  %s\n", star, colorCyan, view.Name, colorReset, view.PriceLabel)

	rows := [][2]string{
		{"Size", view.Size},
		{"Crust", view.Crust},
		{"Delivery", view.DeliveryLabel},
		{"Image", refName(view.Image)},
	}
	for _, r := range rows {
		dots := strings.Repeat("·", 12-len(r[0]))
		fmt.Fprintf(w, "  %s%s %s\n", r[0], colorGray+dots+colorReset, r[1])
	}

	var ingredients []string
	for _, ref := range view.Ingredients {
		ingredients = append(ingredients, refName(ref))
	}
	fmt.Fprintf(w, "  %s: %s\n", output.IngredientsTitle, strings.Join(ingredients, ", "))
	fmt.Fprintf(w, "  %s[ %s ]%s\n\n", colorRed, view.OrderLabel, colorReset)
}

func colorFor(top bool) string {
	if top {
		return colorRed
	}
	return colorGray
}

func refName(ref catalog.ImageRef) string {
	base := path.Base(string(ref))
	return strings.TrimSuffix(base, path.Ext(base))
}
