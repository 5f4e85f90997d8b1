// Package dashboard renders the seller's home screen: profile greeting,
// catalog stats, recent products, and quick actions.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
)

// Action identifies what the user chose to do from the dashboard.
type Action string

const (
	ActionNone          Action = ""
	ActionCreateProduct Action = "create_product"
)

// quickAction is one entry in the quick action list.
type quickAction struct {
	Title string
	Desc  string
	Icon  string
}

var quickActions = []quickAction{
	{Title: "Create Product", Desc: "Add a new craft with AI magic", Icon: "📦"},
	{Title: "Marketing Studio", Desc: "Create campaigns and content", Icon: "📣"},
	{Title: "View Analytics", Desc: "Track your performance", Icon: "📊"},
	{Title: "My Storefront", Desc: "See your public catalog", Icon: "🏪"},
}

// stateLoadedMsg carries the reduced store state into the model.
type stateLoadedMsg struct {
	state   *store.State
	profile *store.Artisan
	err     error
}

// Model is the dashboard BubbleTea model.
type Model struct {
	store   *store.Store
	state   *store.State
	profile *store.Artisan
	loadErr error

	cursor int
	action Action
	notice string

	width  int
	height int
}

// New creates the dashboard model.
func New(st *store.Store) *Model {
	return &Model{store: st}
}

// Run shows the dashboard and returns the action the user picked.
func Run(st *store.Store) (Action, error) {
	m := New(st)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return ActionNone, fmt.Errorf("dashboard failed: %w", err)
	}

	dm, ok := finalModel.(*Model)
	if !ok {
		return ActionNone, fmt.Errorf("unexpected model type")
	}
	return dm.action, nil
}

// Action returns the quick action the user activated, if any.
func (m *Model) Action() Action {
	return m.action
}

// Init starts loading catalog state in the background.
func (m *Model) Init() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		if st == nil {
			return stateLoadedMsg{err: errors.New("catalog store unavailable")}
		}
		ctx := context.Background()
		state, err := st.LoadState(ctx)
		if err != nil {
			logger.Error("Failed to load dashboard state: %v", err)
			return stateLoadedMsg{err: err}
		}
		profile, err := st.CurrentUser(ctx)
		if err != nil && !errors.Is(err, store.ErrNoProfile) {
			return stateLoadedMsg{err: err}
		}
		return stateLoadedMsg{state: state, profile: profile}
	}
}

// Update handles messages for the dashboard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateLoadedMsg:
		m.state = msg.state
		m.profile = msg.profile
		m.loadErr = msg.err
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.notice = ""
			return m, nil
		case "down", "j":
			if m.cursor < len(quickActions)-1 {
				m.cursor++
			}
			m.notice = ""
			return m, nil
		case "enter", "c":
			if msg.String() == "c" {
				m.cursor = 0
			}
			return m.activate()
		}
	}
	return m, nil
}

// activate runs the selected quick action. Only product creation leaves
// the dashboard; the other surfaces are not built yet.
func (m *Model) activate() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case 0:
		m.action = ActionCreateProduct
		return m, tea.Quit
	default:
		m.notice = fmt.Sprintf("%s is coming soon", quickActions[m.cursor].Title)
		return m, nil
	}
}

// View renders the dashboard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.render()

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// render builds the dashboard content.
func (m *Model) render() string {
	t := theme.Current()

	var b strings.Builder

	// Greeting
	name := "Artisan"
	location := ""
	if m.profile != nil {
		name = m.profile.Name
		location = m.profile.Location
	}
	b.WriteString(t.S().Title.Render("Namaste, " + name + "! 🙏"))
	b.WriteString("\n")
	if location != "" {
		b.WriteString(t.S().Hint.Render(location))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(t.S().ErrorText.Render("✗ " + m.loadErr.Error()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.renderStats())
		b.WriteString("\n\n")
		b.WriteString(m.renderRecentProducts())
		b.WriteString("\n")
	}

	b.WriteString(m.renderQuickActions())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(wizard.RenderHintBar("↑↓", "navigate", "enter", "select", "c", "create product", "q", "quit"))

	return lipgloss.NewStyle().
		Width(72).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Render(b.String())
}

// renderStats renders the four stat cards in a row.
func (m *Model) renderStats() string {
	products := 0
	campaigns := 0
	if m.state != nil {
		products = len(m.state.Products)
		campaigns = len(m.state.Campaigns)
	}

	cards := []struct {
		label string
		value string
	}{
		{"Total Products", fmt.Sprintf("%d", products)},
		{"Campaigns", fmt.Sprintf("%d", campaigns)},
		{"Total Views", "2.4K"},
		{"Customer Likes", "486"},
	}

	t := theme.Current()
	cardStyle := lipgloss.NewStyle().
		Width(15).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BgSurface1)).
		Align(lipgloss.Center)

	var rendered []string
	for _, c := range cards {
		body := t.S().Value.Render(c.value) + "\n" + t.S().Label.Render(c.label)
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderRecentProducts lists the three newest catalog entries.
func (m *Model) renderRecentProducts() string {
	t := theme.Current()

	var b strings.Builder
	b.WriteString(t.S().Label.Render("Recent Products"))
	b.WriteString("\n")

	if m.state == nil || len(m.state.Products) == 0 {
		b.WriteString(t.S().Hint.Render("  No products yet. Create your first one!"))
		return b.String()
	}

	// Products arrive oldest first; show the newest three.
	products := m.state.Products
	shown := 0
	for i := len(products) - 1; i >= 0 && shown < 3; i-- {
		p := products[i]
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)).Render("  • " + p.TitleEnglish))
		if p.Price > 0 {
			b.WriteString(t.S().Hint.Render(fmt.Sprintf("  ₹%.0f", p.Price)))
		}
		b.WriteString("\n")
		shown++
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderQuickActions renders the selectable action list.
func (m *Model) renderQuickActions() string {
	t := theme.Current()

	var b strings.Builder
	b.WriteString(t.S().Label.Render("Quick Actions"))
	b.WriteString("\n")

	normal := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary)).
		Bold(true)
	desc := t.S().Hint

	for i, qa := range quickActions {
		line := fmt.Sprintf(" %s %s ", qa.Icon, qa.Title)
		if i == m.cursor {
			b.WriteString(selected.Render(line))
		} else {
			b.WriteString(normal.Render(line))
		}
		b.WriteString(" ")
		b.WriteString(desc.Render(qa.Desc))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
