package console

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/output"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		top      bool
		expected string
	}{
		{true, colorRed},
		{false, colorGray},
	}

	for _, tt := range tests {
		result := colorFor(tt.top)
		if result != tt.expected {
			t.Errorf("colorFor(%v) = %q; want %q", tt.top, result, tt.expected)
		}
	}
}

func TestPrintCatalog(t *testing.T) {
	state := browse.New(catalog.MustDefault())
	state.SelectCategory(1)

	var buf bytes.Buffer
	PrintCatalog(&buf, output.BuildCatalogView(state))
	out := buf.String()

	for _, want := range []string{"DELIVERY", "[Burger]", "Classic Chicken", "Double Cheese"} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintCatalog output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, output.TopBadgeText) != 1 {
		t.Errorf("Expected one top badge, got %d", strings.Count(out, output.TopBadgeText))
	}
	if strings.Contains(out, "Margherita") {
		t.Error("Items from another category printed")
	}
}

func TestPrintDetails(t *testing.T) {
	state := browse.New(catalog.MustDefault())
	p, err := state.OpenDetails(state.VisibleItems()[0])
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintDetails(&buf, output.BuildDetailsView(p, output.Formatting{CurrencySymbol: "₹", DeliveryUnit: "min"}))
	out := buf.String()

	for _, want := range []string{"Margherita", "₹ 200", "30 min", "Thin Crust", "cheese, tomato, basil", output.OrderButtonLabel} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintDetails output missing %q:\n%s", want, out)
		}
	}
}

func TestRefName(t *testing.T) {
	if got := refName("images/ingredients/cheese.png"); got != "cheese" {
		t.Errorf("refName = %q; want cheese", got)
	}
}

func TestPrintCatalogMultibyteNames(t *testing.T) {
	view := output.CatalogView{
		Subtitle: output.HeaderSubtitle,
		Title:    output.HeaderTitle,
		Items: []output.ItemCard{
			{Name: "Pâté Crème Brûlée Deluxe", Weight: "120 gm", Rating: 4.8},
			{Name: "Crêpe", Weight: "90 gm", Rating: 4.1},
		},
	}

	var buf bytes.Buffer
	PrintCatalog(&buf, view)
	out := buf.String()

	if !utf8.ValidString(out) {
		t.Fatalf("PrintCatalog wrote invalid UTF-8: %q", out)
	}
	if !strings.Contains(out, "Pâté Crème Brûlée...") {
		t.Errorf("Expected long name truncated to 20 columns:\n%s", out)
	}
	if !strings.Contains(out, "Crêpe"+colorGray+strings.Repeat("·", 17)+colorReset) {
		t.Errorf("Expected padding by display width:\n%s", out)
	}
}
