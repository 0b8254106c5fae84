package views

import (
	"foodcatalog/ui/tui/state"
)

func RenderCatalog(s state.AppState, width, height int, animCursor float64, chartView, helpView string) string {
	v := CatalogView{}
	return v.Render(s, ViewProps{
		Width:      width,
		Height:     height,
		AnimCursor: animCursor,
		ChartView:  chartView,
		HelpView:   helpView,
	})
}

func RenderDetails(s state.AppState, width, height int, helpView string) string {
	v := DetailsView{}
	return v.Render(s, ViewProps{
		Width:    width,
		Height:   height,
		HelpView: helpView,
	})
}

var (
	_ View = CatalogView{}
	_ View = DetailsView{}
)
