package createwizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
)

// details step focus zones, in tab order
const (
	detailsFocusCraft = iota
	detailsFocusMaterials
	detailsFocusPrice
	detailsFocusMarkets
	detailsFocusLocation
	detailsFocusCount
)

// DetailsStep collects the structured product facts: craft type,
// materials, price hint, target markets, and location. Craft type,
// materials, and location gate the step.
type DetailsStep struct {
	draft *draft.Draft

	craftCursor    int
	materialCursor int
	marketCursor   int

	priceInput    textinput.Model
	locationInput textinput.Model

	focus  int
	width  int
	height int
}

// NewDetailsStep creates the details step over the shared draft.
func NewDetailsStep(d *draft.Draft) *DetailsStep {
	pi := textinput.New()
	pi.Placeholder = "e.g. 400-600 (optional)"
	pi.CharLimit = 60
	pi.SetValue(d.PriceHint)

	li := textinput.New()
	li.Placeholder = "e.g. Jaipur, Rajasthan"
	li.CharLimit = 100
	li.SetValue(d.Location)

	s := &DetailsStep{
		draft:         d,
		priceInput:    pi,
		locationInput: li,
	}

	// Restore the cursor onto a previously chosen craft type.
	for i, ct := range draft.CraftTypes() {
		if ct == d.CraftType {
			s.craftCursor = i
			break
		}
	}

	return s
}

// Init initializes the details step.
func (s *DetailsStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the details step.
func (s *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			if s.focus < detailsFocusCount-1 {
				s.setFocus(s.focus + 1)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			if s.focus > 0 {
				s.setFocus(s.focus - 1)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		case "left", "right":
			s.moveCursor(msg.String() == "right")
			return nil
		case "enter", " ":
			switch s.focus {
			case detailsFocusCraft:
				s.draft.CraftType = draft.CraftTypes()[s.craftCursor]
				return nil
			case detailsFocusMaterials:
				s.draft.ToggleMaterial(draft.MaterialOptions[s.materialCursor])
				return nil
			case detailsFocusMarkets:
				s.draft.ToggleMarket(draft.MarketOptions[s.marketCursor])
				return nil
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case detailsFocusPrice:
		s.priceInput, cmd = s.priceInput.Update(msg)
		s.draft.PriceHint = s.priceInput.Value()
	case detailsFocusLocation:
		s.locationInput, cmd = s.locationInput.Update(msg)
		s.draft.Location = s.locationInput.Value()
	}
	return cmd
}

// moveCursor advances the focused zone's chip cursor, wrapping at the
// ends.
func (s *DetailsStep) moveCursor(forward bool) {
	step := func(cursor, count int) int {
		if forward {
			return (cursor + 1) % count
		}
		return (cursor - 1 + count) % count
	}
	switch s.focus {
	case detailsFocusCraft:
		s.craftCursor = step(s.craftCursor, len(draft.CraftTypes()))
	case detailsFocusMaterials:
		s.materialCursor = step(s.materialCursor, len(draft.MaterialOptions))
	case detailsFocusMarkets:
		s.marketCursor = step(s.marketCursor, len(draft.MarketOptions))
	}
}

func (s *DetailsStep) setFocus(zone int) {
	s.focus = zone
	s.priceInput.Blur()
	s.locationInput.Blur()
	switch zone {
	case detailsFocusPrice:
		s.priceInput.Focus()
	case detailsFocusLocation:
		s.locationInput.Focus()
	}
}

// View renders the details step content.
func (s *DetailsStep) View() string {
	t := theme.Current()

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Bold(true)
	focusedSectionStyle := sectionStyle.Foreground(lipgloss.Color(t.Secondary))

	section := func(zone int, label string) string {
		if s.focus == zone {
			return focusedSectionStyle.Render("▸ " + label)
		}
		return sectionStyle.Render("  " + label)
	}

	craftLabels := make([]string, len(draft.CraftTypes()))
	for i, ct := range draft.CraftTypes() {
		craftLabels[i] = ct.Label()
	}
	craftSelected := ""
	if s.draft.CraftType != "" {
		craftSelected = s.draft.CraftType.Label()
	}

	parts := []string{
		section(detailsFocusCraft, "Craft type *"),
		s.renderChips(craftLabels, s.craftCursor, s.focus == detailsFocusCraft, func(label string) bool {
			return label == craftSelected
		}),
		"",
		section(detailsFocusMaterials, "Materials *"),
		s.renderChips(draft.MaterialOptions, s.materialCursor, s.focus == detailsFocusMaterials, s.draft.HasMaterial),
		"",
		section(detailsFocusPrice, "Price range"),
		s.renderInput(s.priceInput, s.focus == detailsFocusPrice),
		"",
		section(detailsFocusMarkets, "Target markets"),
		s.renderChips(draft.MarketOptions, s.marketCursor, s.focus == detailsFocusMarkets, s.draft.HasMarket),
		"",
		section(detailsFocusLocation, "Location *"),
		s.renderInput(s.locationInput, s.focus == detailsFocusLocation),
		"",
		wizard.RenderHintBar("tab", "next field", "←→", "move", "space", "select"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderChips lays out selectable options as wrapped chips. The cursor is
// highlighted only while the zone has focus; selected chips carry a check
// mark.
func (s *DetailsStep) renderChips(options []string, cursor int, focused bool, selected func(string) bool) string {
	t := theme.Current()

	chipStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgSubtle)).
		Padding(0, 1)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Success)).
		Padding(0, 1)
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary)).
		Padding(0, 1)

	maxWidth := s.width
	if maxWidth <= 0 {
		maxWidth = 60
	}

	var lines []string
	var line []string
	lineWidth := 0
	for i, opt := range options {
		label := opt
		if selected(opt) {
			label = "✓ " + opt
		}

		var chip string
		switch {
		case focused && i == cursor:
			chip = cursorStyle.Render(label)
		case selected(opt):
			chip = selectedStyle.Render(label)
		default:
			chip = chipStyle.Render(label)
		}

		w := lipgloss.Width(chip) + 1
		if lineWidth+w > maxWidth && len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = nil
			lineWidth = 0
		}
		line = append(line, chip)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}

	return strings.Join(lines, "\n")
}

func (s *DetailsStep) renderInput(input textinput.Model, focused bool) string {
	t := theme.Current()
	border := t.BorderDefault
	if focused {
		border = t.BorderFocused
	}
	return lipgloss.NewStyle().
		Width(50).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Render(input.View())
}

// SetSize updates the size of the details step.
func (s *DetailsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus focuses the first zone in the step.
func (s *DetailsStep) Focus() {
	s.setFocus(detailsFocusCraft)
}

// FocusLast focuses the last zone in the step.
func (s *DetailsStep) FocusLast() {
	s.setFocus(detailsFocusLocation)
}

// Blur blurs all inputs in the step.
func (s *DetailsStep) Blur() {
	s.priceInput.Blur()
	s.locationInput.Blur()
}
