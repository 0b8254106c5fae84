package components

import (
	"strconv"

	"foodcatalog/internal/catalog"
	"foodcatalog/internal/output"
	"foodcatalog/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ Component = (*RatingChart)(nil)

// RatingChart shows the ratings of the visible items as a bar chart.
type RatingChart struct {
	Chart  barchart.Model
	Items  []catalog.Item
	Width  int
	Height int
}

func NewRatingChart(width, height int) *RatingChart {
	return &RatingChart{
		Chart:  newBarChart(width, height),
		Width:  width,
		Height: height,
	}
}

func newBarChart(width, height int) barchart.Model {
	return barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
	)
}

func (c *RatingChart) Init() tea.Cmd {
	return nil
}

// SetItems replaces the plotted items.
func (c *RatingChart) SetItems(items []catalog.Item) {
	c.Items = items
}

func (c *RatingChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *RatingChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *RatingChart) View() string {
	c.Chart.Clear()

	barStyle := lipgloss.NewStyle().Foreground(styles.Accent).Background(styles.Accent)
	topStyle := lipgloss.NewStyle().Foreground(styles.AccentRed).Background(styles.AccentRed)

	for i, it := range c.Items {
		style := barStyle
		if it.IsTopOfTheWeek {
			style = topStyle
		}
		c.Chart.Push(barchart.BarData{
			Label: barLabel(i),
			Values: []barchart.BarValue{
				{Name: it.Name, Value: it.Rating, Style: style},
			},
		})
	}
	c.Chart.Draw()

	var legend []string
	for i, it := range c.Items {
		legend = append(legend, styles.LabelStyle.Render(barLabel(i)+" "+it.Name+" "+output.FormatRating(it.Rating)))
	}

	return styles.CardStyle.Width(c.Width + 6).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Ratings"),
			c.Chart.View(),
			lipgloss.JoinVertical(lipgloss.Left, legend...),
		),
	)
}

// barLabel numbers bars from 1 so labels stay unique for any item count.
func barLabel(i int) string {
	return strconv.Itoa(i + 1)
}
