package views

import (
	"fmt"
	"math"

	"foodcatalog/internal/output"
	"foodcatalog/ui/tui/state"
	"foodcatalog/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type CatalogView struct{}

func (v CatalogView) Render(s state.AppState, props ViewProps) string {
	view := output.BuildCatalogView(s.Browse)

	// 1. Header
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderSubStyle.Render(view.Subtitle),
		styles.HeaderMainStyle.Render(view.Title),
	)

	// 2. Category tabs
	var tabs []string
	for _, tab := range view.Tabs {
		// The highlight follows the spring toward the selected tab.
		dist := math.Abs(float64(tab.Index) - props.AnimCursor)
		style := styles.TabStyle
		switch {
		case tab.Selected:
			style = styles.TabActiveStyle
		case dist < 0.5:
			style = style.BorderForeground(styles.Accent)
		}

		label := tab.Name
		if img := ImageLabel(tab.Image); img != "" {
			label = img + " " + label
		}
		tabs = append(tabs, zone.Mark(CategoryZone(tab.Index), style.Render(label+" ›")))
	}
	tabRow := lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	// 3. Item cards
	var cards []string
	for _, card := range view.Items {
		lines := []string{}
		if badge := TopBadge(card.ShowTopBadge); badge != "" {
			lines = append(lines, badge)
		}
		lines = append(lines,
			lipgloss.NewStyle().Bold(true).Render(card.Name),
			styles.LabelStyle.Render(card.Weight),
			fmt.Sprintf("%s  %s %s", ImageLabel(card.Image), Star(true), output.FormatRating(card.Rating)),
		)

		style := styles.CardStyle
		if card.Index == s.ItemCursor {
			style = styles.CardActiveStyle
		}
		cards = append(cards, zone.Mark(ItemZone(card.Index), style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))))
	}
	if len(cards) == 0 {
		cards = append(cards, styles.LabelStyle.PaddingLeft(2).Render("No items in this category."))
	}

	itemList := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if props.ChartView != "" {
		itemList = lipgloss.JoinHorizontal(lipgloss.Top, itemList, props.ChartView)
	}

	parts := []string{
		header,
		styles.SectionStyle.Render(output.CategoriesTitle),
		tabRow,
		styles.SectionStyle.Render(output.PopularTitle),
		itemList,
	}
	if s.Err != nil {
		parts = append(parts, styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", s.Err)))
	}
	if props.HelpView != "" {
		parts = append(parts, styles.FooterStyle.Render(props.HelpView))
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
