package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/config"
	"foodcatalog/internal/navigation"
	"foodcatalog/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	m := InitialModel(browse.New(catalog.MustDefault()), config.DefaultConfig())
	return &m
}

func press(t *testing.T, m *MainModel, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	updated, cmd := m.Update(msg)
	if updated.(*MainModel) != m {
		t.Fatal("Update returned a different model")
	}
	return cmd
}

// run feeds the message produced by cmd back into the model.
func run(t *testing.T, m *MainModel, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command, got nil")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	if m.state.CurrentPage() != navigation.PageCatalog {
		t.Errorf("Expected initial page catalog, got %v", m.state.CurrentPage())
	}
	if m.state.Browse.Selected() != 0 {
		t.Errorf("Expected first category selected, got %d", m.state.Browse.Selected())
	}
	if len(m.ratingChart.Items) != len(m.state.Browse.VisibleItems()) {
		t.Errorf("Chart should plot the visible items")
	}
	if m.Init() == nil {
		t.Error("Init should start the animation")
	}
}

func TestCategoryNavigation(t *testing.T) {
	m := newTestModel(t)
	last := m.state.Browse.Catalog().Len() - 1

	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.state.Browse.Selected() != 0 {
		t.Errorf("Left on first category should be a no-op, got %d", m.state.Browse.Selected())
	}

	m.state.ItemCursor = 1
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.state.Browse.Selected() != 1 {
		t.Errorf("Expected category 1 after Right, got %d", m.state.Browse.Selected())
	}
	if m.state.ItemCursor != 0 {
		t.Errorf("Changing category should reset the item cursor, got %d", m.state.ItemCursor)
	}

	for i := 0; i < last+3; i++ {
		press(t, m, runeKey('l'))
	}
	if m.state.Browse.Selected() != last {
		t.Errorf("Expected selection to stop at %d, got %d", last, m.state.Browse.Selected())
	}

	want := m.state.Browse.Catalog().Items(last)
	if len(m.ratingChart.Items) != len(want) || m.ratingChart.Items[0].Name != want[0].Name {
		t.Errorf("Chart not updated for the new category")
	}
}

func TestItemCursorBounds(t *testing.T) {
	m := newTestModel(t)
	n := len(m.state.Browse.VisibleItems())

	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.state.ItemCursor != 0 {
		t.Errorf("Up at top should stay at 0, got %d", m.state.ItemCursor)
	}
	for i := 0; i < n+2; i++ {
		press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.state.ItemCursor != n-1 {
		t.Errorf("Expected cursor at %d, got %d", n-1, m.state.ItemCursor)
	}
}

func TestOpenDetailsAndBack(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	item := m.state.Browse.VisibleItems()[1]
	msg := run(t, m, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	if _, ok := msg.(navigation.OpenDetailsMsg); !ok {
		t.Fatalf("Expected OpenDetailsMsg, got %T", msg)
	}

	if m.state.CurrentPage() != navigation.PageDetails {
		t.Fatalf("Expected details page, got %v", m.state.CurrentPage())
	}
	p, ok := m.state.Details()
	if !ok {
		t.Fatal("Expected a details payload")
	}
	if p.Name != item.Name || p.Price != item.Price || p.Delivery != item.Delivery || p.IsTopOfTheWeek != item.IsTopOfTheWeek {
		t.Errorf("Payload %+v does not match item %+v", p, item)
	}

	// Category keys are inert on the details screen.
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.state.Browse.Selected() != 1 {
		t.Errorf("Selection changed while on details: %d", m.state.Browse.Selected())
	}

	msg = run(t, m, press(t, m, tea.KeyMsg{Type: tea.KeyEsc}))
	back, ok := msg.(navigation.NavigateBackMsg)
	if !ok || back.Reason != navigation.BackButton {
		t.Fatalf("Expected back-button NavigateBackMsg, got %#v", msg)
	}
	if m.state.CurrentPage() != navigation.PageCatalog {
		t.Errorf("Expected catalog after back, got %v", m.state.CurrentPage())
	}
	if m.state.Browse.Selected() != 1 || m.state.ItemCursor != 1 {
		t.Errorf("Catalog state not preserved: category %d cursor %d", m.state.Browse.Selected(), m.state.ItemCursor)
	}
}

func TestRepeatedOpenShowsOneDetailsScreen(t *testing.T) {
	m := newTestModel(t)

	// Both presses land before either command is delivered.
	first := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	second := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	run(t, m, first)
	run(t, m, second)

	if m.state.Nav.Depth() != 2 {
		t.Fatalf("Expected stack depth 2 after a double open, got %d", m.state.Nav.Depth())
	}

	m.Update(navigation.NavigateBackMsg{Reason: navigation.BackButton})
	if m.state.CurrentPage() != navigation.PageCatalog {
		t.Errorf("Expected catalog after one back, got %v", m.state.CurrentPage())
	}
	if m.state.Nav.Depth() != 1 {
		t.Errorf("Expected stack depth 1, got %d", m.state.Nav.Depth())
	}
}

func TestPlaceOrderReturnsToCatalog(t *testing.T) {
	m := newTestModel(t)
	run(t, m, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	msg := run(t, m, press(t, m, runeKey('o')))
	back, ok := msg.(navigation.NavigateBackMsg)
	if !ok || back.Reason != navigation.PlaceOrder {
		t.Fatalf("Expected place-order NavigateBackMsg, got %#v", msg)
	}
	if m.state.CurrentPage() != navigation.PageCatalog {
		t.Errorf("Expected catalog after placing order, got %v", m.state.CurrentPage())
	}
	if m.state.Nav.Depth() != 1 {
		t.Errorf("Expected stack depth 1, got %d", m.state.Nav.Depth())
	}
}

func TestBackOnCatalogIsNoop(t *testing.T) {
	m := newTestModel(t)
	m.Update(navigation.NavigateBackMsg{Reason: navigation.BackButton})
	if m.state.CurrentPage() != navigation.PageCatalog || m.state.Nav.Depth() != 1 {
		t.Errorf("Back on the root page should be ignored")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "Bye") {
		t.Error("Expected goodbye view after quitting")
	}
}

func TestAnimationLogic(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", m.animCursor)
	}

	frame := AnimateMsg(time.Now())
	_, cmd := m.Update(frame)
	if cmd == nil {
		t.Error("Animation should reschedule itself")
	}
	first := m.animCursor
	if first <= 0 || first >= 1 {
		t.Errorf("Expected animCursor strictly between 0 and 1 after one frame, got %f", first)
	}

	m.Update(frame)
	if m.animCursor <= first {
		t.Errorf("Expected animCursor to keep moving toward 1, got %f", m.animCursor)
	}

	for i := 0; i < 300; i++ {
		m.Update(frame)
	}
	if m.animCursor < 0.99 || m.animCursor > 1.01 {
		t.Errorf("Expected animCursor to settle near 1, got %f", m.animCursor)
	}
}

func TestMouseSelectsAndOpens(t *testing.T) {
	m := newTestModel(t)
	click := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	target := views.CategoryZone(2)
	m.inZone = func(id string, _ tea.MouseMsg) bool { return id == target }
	m.Update(click)
	if m.state.Browse.Selected() != 2 {
		t.Fatalf("Expected category 2 after click, got %d", m.state.Browse.Selected())
	}

	target = views.ItemZone(0)
	_, cmd := m.Update(click)
	run(t, m, cmd)
	p, ok := m.state.Details()
	if !ok || p.Name != m.state.Browse.VisibleItems()[0].Name {
		t.Fatalf("Expected details of the clicked item, got %+v", p)
	}

	target = views.ZoneDetailsOrder
	_, cmd = m.Update(click)
	run(t, m, cmd)
	if m.state.CurrentPage() != navigation.PageCatalog {
		t.Errorf("Expected catalog after clicking order, got %v", m.state.CurrentPage())
	}

	// Presses and motion are ignored.
	target = views.CategoryZone(0)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.state.Browse.Selected() != 2 {
		t.Errorf("Mouse press should not change selection")
	}
}

func TestMalformedItemStaysOnCatalog(t *testing.T) {
	bad := catalog.New(catalog.Palette{}, []catalog.Category{{
		Name:  "Broken",
		Items: []catalog.Item{{Name: "No Image", Price: 1, Delivery: 5, Size: "S", Crust: "Thin"}},
	}})
	m := InitialModel(browse.New(bad), config.DefaultConfig())

	cmd := press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no navigation for a malformed item")
	}
	if m.state.Err == nil {
		t.Error("Expected the payload error to be recorded")
	}
	if m.state.CurrentPage() != navigation.PageCatalog {
		t.Errorf("Expected to stay on catalog, got %v", m.state.CurrentPage())
	}
}

func TestViewRendersEachPage(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	for _, want := range []string{"Food", "Delivery", "Pizza", "Margherita"} {
		if !strings.Contains(out, want) {
			t.Errorf("Catalog view missing %q", want)
		}
	}

	run(t, m, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	out = m.View()
	for _, want := range []string{"Margherita", "Place on Order", "30 min"} {
		if !strings.Contains(out, want) {
			t.Errorf("Details view missing %q", want)
		}
	}
}
