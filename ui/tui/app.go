package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/config"
	"foodcatalog/internal/navigation"
	"foodcatalog/internal/output"
	"foodcatalog/ui/tui/components"
	"foodcatalog/ui/tui/state"
	"foodcatalog/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
)

const (
	chartWidth = 24
	minWidth   = 80
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	config      config.Config
	state       state.AppState
	keys        KeyMap
	help        help.Model
	ratingChart *components.RatingChart
	animCursor  float64
	velocity    float64 // Physics velocity
	spring      harmonica.Spring
	frame       time.Duration
	inZone      func(id string, msg tea.MouseMsg) bool
	quitting    bool
	width       int
	height      int
}

// Messages
type AnimateMsg time.Time

func InitialModel(b *browse.State, cfg config.Config) MainModel {
	fps := cfg.AnimationFPS
	if fps <= 0 {
		fps = 60
	}

	m := MainModel{
		config: cfg,
		state: state.New(b, output.Formatting{
			CurrencySymbol: cfg.CurrencySymbol,
			DeliveryUnit:   cfg.DeliveryUnit,
		}),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		ratingChart: components.NewRatingChart(chartWidth, cfg.ChartHeight),
		spring:      harmonica.NewSpring(harmonica.FPS(fps), cfg.SpringFrequency, cfg.SpringDamping),
		frame:       time.Second / time.Duration(fps),
		inZone: func(id string, msg tea.MouseMsg) bool {
			return zone.Get(id).InBounds(msg)
		},
	}
	m.ratingChart.SetItems(b.VisibleItems())
	return m
}

func (m *MainModel) Init() tea.Cmd {
	return m.animateCmd()
}

// Commands
func (m *MainModel) animateCmd() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case navigation.OpenDetailsMsg:
		// Only one details screen at a time; a repeated open is dropped.
		if m.state.CurrentPage() == navigation.PageDetails {
			return m, nil
		}
		m.state.Nav.Push(msg.Payload)
		log.Printf("open details: %s", msg.Payload.Name)
		return m, nil

	case navigation.NavigateBackMsg:
		if m.state.Nav.Back() {
			log.Printf("back to %s (reason %d)", m.state.CurrentPage(), msg.Reason)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.CurrentPage() == navigation.PageDetails {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, navigation.GoBack(navigation.BackButton)
		case key.Matches(msg, m.keys.Order):
			// Placing an order only dismisses the screen.
			return m, navigation.GoBack(navigation.PlaceOrder)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevCategory):
		m.selectCategory(m.state.Browse.Selected() - 1)
	case key.Matches(msg, m.keys.NextCategory):
		m.selectCategory(m.state.Browse.Selected() + 1)
	case key.Matches(msg, m.keys.Up):
		if m.state.ItemCursor > 0 {
			m.state.ItemCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.state.ItemCursor < len(m.state.Browse.VisibleItems())-1 {
			m.state.ItemCursor++
		}
	case key.Matches(msg, m.keys.Open):
		return m, m.openItem(m.state.ItemCursor)
	}
	return m, nil
}

func (m *MainModel) selectCategory(i int) {
	if !m.state.Browse.SelectCategory(i) {
		return
	}
	m.state.ItemCursor = 0
	m.state.Err = nil
	m.ratingChart.SetItems(m.state.Browse.VisibleItems())
}

// openItem builds the payload up front so a malformed item never reaches the details screen.
func (m *MainModel) openItem(i int) tea.Cmd {
	payload, ok, err := m.state.Browse.OpenVisible(i)
	if !ok {
		return nil
	}
	if err != nil {
		m.state.Err = err
		log.Printf("open details failed: %v", err)
		return nil
	}
	m.state.Err = nil
	return navigation.OpenDetails(payload)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	target := float64(m.state.Browse.Selected())
	m.animCursor, m.velocity = m.spring.Update(m.animCursor, target, m.velocity)
	return m, m.animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if msg.Width >= minWidth {
		m.ratingChart.Resize(chartWidth, m.config.ChartHeight)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.state.CurrentPage() == navigation.PageDetails {
		switch {
		case m.inZone(views.ZoneDetailsBack, msg):
			return m, navigation.GoBack(navigation.BackButton)
		case m.inZone(views.ZoneDetailsOrder, msg):
			return m, navigation.GoBack(navigation.PlaceOrder)
		}
		return m, nil
	}

	for i := 0; i < m.state.Browse.Catalog().Len(); i++ {
		if m.inZone(views.CategoryZone(i), msg) {
			m.selectCategory(i)
			return m, nil
		}
	}
	for i := range m.state.Browse.VisibleItems() {
		if m.inZone(views.ItemZone(i), msg) {
			m.state.ItemCursor = i
			return m, m.openItem(i)
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	helpView := m.help.View(pageHelp{keys: m.keys, page: m.state.CurrentPage()})

	switch m.state.CurrentPage() {
	case navigation.PageDetails:
		return views.RenderDetails(m.state, m.width, m.height, helpView)
	default:
		chart := ""
		if m.width == 0 || m.width >= minWidth {
			chart = m.ratingChart.View()
		}
		return views.RenderCatalog(m.state, m.width, m.height, m.animCursor, chart, helpView)
	}
}

func Start(b *browse.State, cfg config.Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "foodcatalog")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	zone.NewGlobal()
	defer zone.Close()

	m := InitialModel(b, cfg)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(&m, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
