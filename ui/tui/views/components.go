package views

import (
	"fmt"
	"path"
	"strings"

	"foodcatalog/internal/catalog"
	"foodcatalog/internal/output"
	"foodcatalog/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Zone IDs used for mouse hit-testing.
const (
	ZoneDetailsBack  = "details_back"
	ZoneDetailsOrder = "details_order"
)

func CategoryZone(i int) string { return fmt.Sprintf("category_%d", i) }

func ItemZone(i int) string { return fmt.Sprintf("item_%d", i) }

// ImageLabel stands in for an image asset the terminal cannot draw.
func ImageLabel(ref catalog.ImageRef) string {
	if ref == "" {
		return ""
	}
	base := path.Base(string(ref))
	return "[" + strings.TrimSuffix(base, path.Ext(base)) + "]"
}

// TopBadge renders the "top of the week" marker, or nothing when hidden.
func TopBadge(visible bool) string {
	if !visible {
		return ""
	}
	return styles.BadgeStyle.Render("♛ " + output.TopBadgeText)
}

// Star is bright for top-of-the-week items and dimmed otherwise.
func Star(highlighted bool) string {
	if highlighted {
		return lipgloss.NewStyle().Foreground(styles.Accent).Render("★")
	}
	return styles.LabelStyle.Render("☆")
}
