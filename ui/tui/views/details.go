package views

import (
	"strings"

	"foodcatalog/internal/output"
	"foodcatalog/ui/tui/state"
	"foodcatalog/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type DetailsView struct{}

func (v DetailsView) Render(s state.AppState, props ViewProps) string {
	payload, ok := s.Details()
	if !ok {
		return styles.ErrorStyle.Render("No item selected.")
	}
	view := output.BuildDetailsView(payload, s.Format)

	back := zone.Mark(ZoneDetailsBack, styles.TabStyle.Render("‹"))
	header := lipgloss.JoinHorizontal(lipgloss.Center, back, "  ", Star(view.StarHighlighted))

	name := lipgloss.NewStyle().Bold(true).MarginTop(1).Render(view.Name)
	price := styles.PriceStyle.Render(view.PriceLabel)

	row := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.LabelStyle.Render(label),
			lipgloss.NewStyle().Bold(true).MarginBottom(1).Render(value),
		)
	}
	attrs := lipgloss.JoinVertical(lipgloss.Left,
		row("Size", view.Size),
		row("Crust", view.Crust),
		row("Delivery", view.DeliveryLabel),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		attrs,
		lipgloss.NewStyle().PaddingLeft(6).Render(ImageLabel(view.Image)),
	)

	var ingredients []string
	for _, ref := range view.Ingredients {
		ingredients = append(ingredients, styles.TabStyle.Render(ImageLabel(ref)))
	}

	order := zone.Mark(ZoneDetailsOrder, styles.ButtonStyle.Render(view.OrderLabel+" ›"))

	parts := []string{
		header,
		name,
		price,
		"",
		body,
		styles.SectionStyle.UnsetPaddingLeft().Render(output.IngredientsTitle),
		lipgloss.JoinHorizontal(lipgloss.Top, ingredients...),
		"",
		order,
	}
	if props.HelpView != "" {
		parts = append(parts, strings.TrimRight(styles.FooterStyle.UnsetPaddingLeft().Render(props.HelpView), "\n"))
	}

	return zone.Scan(lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}
