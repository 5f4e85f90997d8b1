package createwizard

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/media"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
)

// PhotosStep collects product photos. The user types a file path, enter
// imports it into the app's media directory, and the imported photos are
// listed below the input.
type PhotosStep struct {
	input  textinput.Model
	draft  *draft.Draft
	intake *media.Intake
	width  int
	height int
	err    string
}

// NewPhotosStep creates the photos step over the shared draft.
func NewPhotosStep(d *draft.Draft, intake *media.Intake) *PhotosStep {
	ti := textinput.New()
	ti.Placeholder = "path to a photo, e.g. ~/photos/blue-vase.jpg"
	ti.CharLimit = 500
	ti.Focus()

	return &PhotosStep{
		input:  ti,
		draft:  d,
		intake: intake,
	}
}

// Init initializes the photos step.
func (p *PhotosStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the photos step.
func (p *PhotosStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return p.addPhoto()
		case "ctrl+x":
			// Remove the most recently added photo
			if n := len(p.draft.Images); n > 0 {
				path := p.draft.Images[n-1]
				p.draft.RemoveImage(n - 1)
				if p.intake != nil {
					_ = p.intake.Remove(path)
				}
			}
			return nil
		case "tab":
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		default:
			if p.err != "" {
				p.err = ""
			}
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// addPhoto validates the typed path and imports it.
func (p *PhotosStep) addPhoto() tea.Cmd {
	path := strings.TrimSpace(p.input.Value())
	if path == "" {
		p.err = "enter a photo path first"
		return nil
	}
	if !media.IsImage(path) {
		p.err = fmt.Sprintf("unsupported image type: %s", filepath.Ext(path))
		return nil
	}

	stored := path
	if p.intake != nil {
		var err error
		stored, err = p.intake.AddImage(path)
		if err != nil {
			p.err = err.Error()
			return nil
		}
	}

	p.draft.AddImage(stored)
	p.input.SetValue("")
	p.err = ""
	return nil
}

// View renders the photos step content.
func (p *PhotosStep) View() string {
	t := theme.Current()

	instruction := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		MarginBottom(1).
		Render("Add photos of your craft. Clear, bright photos sell best:")

	inputBox := lipgloss.NewStyle().
		Width(60).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Render(p.input.View())

	var parts []string
	parts = append(parts, instruction, inputBox)

	if len(p.draft.Images) > 0 {
		itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle))
		checkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
		var list strings.Builder
		for _, img := range p.draft.Images {
			list.WriteString(checkStyle.Render("✓ "))
			list.WriteString(itemStyle.Render(filepath.Base(img)))
			list.WriteString("\n")
		}
		countLabel := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Render(fmt.Sprintf("%d photo(s) added", len(p.draft.Images)))
		parts = append(parts, strings.TrimRight(list.String(), "\n"), countLabel)
	}

	if p.err != "" {
		parts = append(parts, t.S().ErrorText.Render("✗ "+p.err))
	}

	parts = append(parts, wizard.RenderHintBar("enter", "add photo", "ctrl+x", "remove last"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the size of the photos step.
func (p *PhotosStep) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus focuses the path input.
func (p *PhotosStep) Focus() {
	p.input.Focus()
}

// Blur blurs the path input.
func (p *PhotosStep) Blur() {
	p.input.Blur()
}
