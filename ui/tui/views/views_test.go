package views

import (
	"os"
	"strings"
	"testing"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/output"
	"foodcatalog/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newState(t *testing.T) state.AppState {
	t.Helper()
	return state.New(browse.New(catalog.MustDefault()), output.Formatting{CurrencySymbol: "₹", DeliveryUnit: "min"})
}

func TestImageLabel(t *testing.T) {
	tests := []struct {
		ref  catalog.ImageRef
		want string
	}{
		{"images/pizza1.png", "[pizza1]"},
		{"burger", "[burger]"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ImageLabel(tt.ref); got != tt.want {
			t.Errorf("ImageLabel(%q) = %q; want %q", tt.ref, got, tt.want)
		}
	}
}

func TestTopBadge(t *testing.T) {
	if TopBadge(false) != "" {
		t.Error("Hidden badge should render nothing")
	}
	if !strings.Contains(TopBadge(true), output.TopBadgeText) {
		t.Error("Visible badge should carry its text")
	}
}

func TestCatalogRender(t *testing.T) {
	s := newState(t)
	out := CatalogView{}.Render(s, ViewProps{Width: 120, Height: 40, HelpView: "help-line"})

	for _, want := range []string{output.HeaderTitle, output.CategoriesTitle, "Pizza", "Burger", "Margherita", "Pepperoni Feast", "help-line"} {
		if !strings.Contains(out, want) {
			t.Errorf("Catalog render missing %q", want)
		}
	}
	if strings.Count(out, output.TopBadgeText) != 1 {
		t.Errorf("Expected exactly one top badge for Pizza, got %d", strings.Count(out, output.TopBadgeText))
	}

	s.Browse.SelectCategory(1)
	out = CatalogView{}.Render(s, ViewProps{Width: 120, Height: 40})
	if strings.Contains(out, "Margherita") || !strings.Contains(out, "Classic Chicken") {
		t.Error("Cards should follow the selected category")
	}
}

func TestDetailsRender(t *testing.T) {
	s := newState(t)
	if out := (DetailsView{}).Render(s, ViewProps{Width: 80}); !strings.Contains(strings.ToLower(out), "no item") {
		t.Errorf("Expected placeholder without a payload, got %q", out)
	}

	p, err := s.Browse.OpenDetails(s.Browse.VisibleItems()[1])
	if err != nil {
		t.Fatal(err)
	}
	s.Nav.Push(p)

	out := RenderDetails(s, 100, 40, "")
	for _, want := range []string{"Pepperoni Feast", "₹ 320", "35 min", "Hand Tossed", output.OrderButtonLabel, "[pepperoni]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Details render missing %q", want)
		}
	}
}
