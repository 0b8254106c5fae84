package styles

import (
	"foodcatalog/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors; SetPalette replaces them with the catalog's named colors.
var (
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Accent    = lipgloss.Color("#FFC231")
	AccentRed = lipgloss.Color("#FB5D2E")
	LightGray = lipgloss.Color("#F0F0F3")

	Subtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

var (
	HeaderSubStyle  lipgloss.Style
	HeaderMainStyle lipgloss.Style
	SectionStyle    lipgloss.Style
	TabStyle        lipgloss.Style
	TabActiveStyle  lipgloss.Style
	CardStyle       lipgloss.Style
	CardActiveStyle lipgloss.Style
	BadgeStyle      lipgloss.Style
	ButtonStyle     lipgloss.Style
	PriceStyle      lipgloss.Style
	LabelStyle      lipgloss.Style
	ErrorStyle      lipgloss.Style
	FooterStyle     lipgloss.Style
)

func init() {
	build()
}

// SetPalette applies the catalog's colors. Empty entries keep the current color.
func SetPalette(p catalog.Palette) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&White, p.White)
	set(&Black, p.Black)
	set(&Accent, p.Accent)
	set(&AccentRed, p.AccentRed)
	set(&LightGray, p.LightGray)
	build()
}

func build() {
	HeaderSubStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		PaddingLeft(2)

	HeaderMainStyle = lipgloss.NewStyle().
		Bold(true).
		PaddingLeft(2).
		MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		PaddingLeft(2).
		MarginTop(1)

	TabStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1).
		MarginRight(1)

	TabActiveStyle = TabStyle.
		BorderForeground(Accent).
		Background(Accent).
		Foreground(Black).
		Bold(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 2).
		MarginLeft(2).
		Width(44)

	CardActiveStyle = CardStyle.
		BorderForeground(Accent)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Background(Accent).
		Foreground(Black).
		Bold(true).
		Padding(0, 3)

	PriceStyle = lipgloss.NewStyle().
		Foreground(AccentRed).
		Bold(true)

	LabelStyle = lipgloss.NewStyle().
		Foreground(Subtle)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(AccentRed).
		Bold(true).
		PaddingLeft(2)

	FooterStyle = lipgloss.NewStyle().
		PaddingLeft(2).
		MarginTop(1)
}
