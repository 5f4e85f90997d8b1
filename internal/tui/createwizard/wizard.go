// Package createwizard implements the product creation flow: a five-step
// wizard collecting photos, the craft's story, and structured details,
// then generating AI listing content and publishing to the catalog.
package createwizard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/janhvi-crypto/CraftConnect/internal/config"
	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/generate"
	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/janhvi-crypto/CraftConnect/internal/media"
	"github.com/janhvi-crypto/CraftConnect/internal/publish"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
	flow "github.com/janhvi-crypto/CraftConnect/internal/wizard"
)

// Modal layout constants
const (
	modalWidth        = 70
	modalPadding      = 2
	modalBorderWidth  = 1
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

// Model is the main BubbleTea model for the product creation wizard.
// It manages the step flow: photos → story → details → generate → review.
type Model struct {
	seq       flow.Sequencer
	draft     *draft.Draft
	cancelled bool
	width     int
	height    int
	cfg       *config.Config
	ctx       context.Context

	client generate.Client
	store  *store.Store
	intake *media.Intake

	// Step components, created lazily and kept so draft progress and
	// generation state survive back navigation.
	photosStep     *PhotosStep
	storyStep      *StoryStep
	detailsStep    *DetailsStep
	generationStep *GenerationStep
	reviewStep     *ReviewStep

	// Button bar with focus tracking
	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	// Cached button bars per gated step (prevents focus reset on re-render)
	photosButtonBar  *wizard.ButtonBar
	storyButtonBar   *wizard.ButtonBar
	detailsButtonBar *wizard.ButtonBar

	// Publish outcome
	published    *store.Product
	publishError string
	showPubError bool
}

// New creates the wizard model. The store may be nil in tests; publishing
// then fails with a visible error instead of panicking.
func New(cfg *config.Config, client generate.Client, st *store.Store, intake *media.Intake) *Model {
	return &Model{
		draft:  draft.New(),
		cfg:    cfg,
		ctx:    context.Background(),
		client: client,
		store:  st,
		intake: intake,
	}
}

// Run is the entry point for the product creation wizard.
func Run(cfg *config.Config, client generate.Client, st *store.Store, intake *media.Intake) error {
	m := New(cfg, client, st, intake)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	wm, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if wm.cancelled {
		logger.Info("Product creation cancelled by user")
		return nil
	}
	if wm.published != nil {
		logger.Info("Product published: %s", wm.published.ID)
	}
	return nil
}

// Draft exposes the shared draft (used by tests).
func (m *Model) Draft() *draft.Draft {
	return m.draft
}

// Published returns the stored product after a successful publish.
func (m *Model) Published() *store.Product {
	return m.published
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	return m.initCurrentStep()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Publish error modal takes over the keyboard.
		if m.showPubError {
			switch msg.String() {
			case "y", "Y":
				return m, func() tea.Msg {
					return RetryPublishMsg{}
				}
			case "n", "N", "esc":
				m.showPubError = false
				m.publishError = ""
				return m, nil
			}
			return m, nil
		}

		// Success screen: any of these leaves the wizard.
		if m.published != nil {
			switch msg.String() {
			case "enter", "q", "esc":
				return m, tea.Quit
			}
			return m, nil
		}

		// Handle button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.focusStepContentFirst()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.focusStepContentLast()
				}
				return m, nil
			case "enter", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.seq.IsFirst() {
				m.cancelled = true
				return m, tea.Quit
			}
			if m.seq.Current() == flow.StepGenerate && m.generationStep != nil {
				// Leaving mid-generation abandons the run; a late
				// result must not mutate the draft.
				m.generationStep.Cancel()
			}
			return m.goBack()
		case "tab":
			if !m.buttonFocused && m.hasButtons() {
				m.buttonFocused = true
				m.blurStepContent()
				m.ensureButtonBar()
				m.buttonBar.FocusFirst()
				return m, nil
			}
		case "shift+tab":
			if !m.buttonFocused && m.hasButtons() {
				m.buttonFocused = true
				m.blurStepContent()
				m.ensureButtonBar()
				m.buttonBar.FocusLast()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case NextStepMsg:
		return m.goNext()

	case PrevStepMsg:
		return m.goBack()

	case GenerationFinishedMsg:
		// Generation completed; move straight to review.
		if m.seq.Current() == flow.StepGenerate && m.seq.Advance() {
			m.buttonFocused = false
			m.buttonBar = nil
			// Rebuild the review preview against the fresh listing.
			m.reviewStep = nil
			return m, m.initCurrentStep()
		}
		return m, nil

	case PublishRequestedMsg, RetryPublishMsg:
		m.showPubError = false
		m.publishError = ""
		return m, m.publishCmd()

	case PublishedMsg:
		m.published = msg.Product
		return m, nil

	case PublishErrorMsg:
		logger.Error("Publish failed: %v", msg.Err)
		m.publishError = msg.Err.Error()
		m.showPubError = true
		return m, nil

	case wizard.TabExitForwardMsg:
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusFirst()
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusLast()
		return m, nil
	}

	// Forward messages to current step
	return m, m.updateCurrentStep(msg)
}

// publishCmd stores the draft as a catalog product in the background.
func (m *Model) publishCmd() tea.Cmd {
	st := m.store
	d := m.draft
	ctx := m.ctx
	return func() tea.Msg {
		if st == nil {
			return PublishErrorMsg{Err: fmt.Errorf("catalog store unavailable")}
		}
		product, err := publish.Publish(ctx, st, d)
		if err != nil {
			return PublishErrorMsg{Err: err}
		}
		return PublishedMsg{Product: product}
	}
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()

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

// initCurrentStep creates the current step component if needed and
// returns its init command.
func (m *Model) initCurrentStep() tea.Cmd {
	var cmd tea.Cmd
	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep == nil {
			m.photosStep = NewPhotosStep(m.draft, m.intake)
		}
		cmd = m.photosStep.Init()
	case flow.StepStory:
		if m.storyStep == nil {
			m.storyStep = NewStoryStep(m.draft, m.intake)
		}
		cmd = m.storyStep.Init()
	case flow.StepDetails:
		if m.detailsStep == nil {
			m.detailsStep = NewDetailsStep(m.draft)
		}
		cmd = m.detailsStep.Init()
	case flow.StepGenerate:
		if m.generationStep == nil {
			m.generationStep = NewGenerationStep(m.draft, m.client)
		}
		cmd = m.generationStep.Init()
	case flow.StepReview:
		if m.reviewStep == nil {
			m.reviewStep = NewReviewStep(m.draft)
		}
		cmd = m.reviewStep.Init()
	}
	m.updateCurrentStepSize()
	return cmd
}

// updateCurrentStep forwards a message to the current step.
func (m *Model) updateCurrentStep(msg tea.Msg) tea.Cmd {
	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep != nil {
			return m.photosStep.Update(msg)
		}
	case flow.StepStory:
		if m.storyStep != nil {
			return m.storyStep.Update(msg)
		}
	case flow.StepDetails:
		if m.detailsStep != nil {
			return m.detailsStep.Update(msg)
		}
	case flow.StepGenerate:
		if m.generationStep != nil {
			return m.generationStep.Update(msg)
		}
	case flow.StepReview:
		if m.reviewStep != nil {
			return m.reviewStep.Update(msg)
		}
	}
	return nil
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	height = height - 10
	if height < 10 {
		height = 10
	}
	return width, height
}

// updateCurrentStepSize updates the size of the current step.
func (m *Model) updateCurrentStepSize() {
	contentWidth, contentHeight := m.getModalContentSize()

	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep != nil {
			m.photosStep.SetSize(contentWidth, contentHeight)
		}
	case flow.StepStory:
		if m.storyStep != nil {
			m.storyStep.SetSize(contentWidth, contentHeight)
		}
	case flow.StepDetails:
		if m.detailsStep != nil {
			m.detailsStep.SetSize(contentWidth, contentHeight)
		}
	case flow.StepGenerate:
		if m.generationStep != nil {
			m.generationStep.SetSize(contentWidth, contentHeight)
		}
	case flow.StepReview:
		if m.reviewStep != nil {
			m.reviewStep.SetSize(contentWidth, contentHeight)
		}
	}
}

// renderCurrentStep renders the content for the current step.
func (m *Model) renderCurrentStep() string {
	t := theme.Current()

	if m.showPubError {
		return m.renderPublishErrorModal()
	}
	if m.published != nil {
		return m.renderSuccessScreen()
	}

	info := flow.Steps()[m.seq.Index()]
	stepTitle := fmt.Sprintf("Create Product - Step %d of %d: %s",
		m.seq.Index()+1, m.seq.Count(), info.Title)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		Render(stepTitle)

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		MarginBottom(1).
		Render(info.Description)

	indicator := m.renderStepIndicator()

	var stepContent string
	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep != nil {
			stepContent = m.photosStep.View()
		}
	case flow.StepStory:
		if m.storyStep != nil {
			stepContent = m.storyStep.View()
		}
	case flow.StepDetails:
		if m.detailsStep != nil {
			stepContent = m.detailsStep.View()
		}
	case flow.StepGenerate:
		if m.generationStep != nil {
			stepContent = m.generationStep.View()
		}
	case flow.StepReview:
		if m.reviewStep != nil {
			stepContent = m.reviewStep.View()
		}
	}

	var buttonBarContent string
	if m.hasButtons() {
		m.ensureButtonBar()
		buttonBarContent = m.buttonBar.Render()
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render("tab to navigate • esc to go back")

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault))

	var content string
	if buttonBarContent != "" {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			subtitle,
			indicator,
			"",
			stepContent,
			"",
			buttonBarContent,
			"",
			hint,
		)
	} else {
		// Generation and review render their own navigation hints.
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			subtitle,
			indicator,
			"",
			stepContent,
		)
	}

	return modalStyle.Render(content)
}

// renderStepIndicator renders the five-dot progress line.
func (m *Model) renderStepIndicator() string {
	t := theme.Current()
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))
	pendingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface2))

	var dots []string
	for i := 0; i < m.seq.Count(); i++ {
		switch {
		case i < m.seq.Index():
			dots = append(dots, doneStyle.Render("●"))
		case i == m.seq.Index():
			dots = append(dots, currentStyle.Render("●"))
		default:
			dots = append(dots, pendingStyle.Render("○"))
		}
	}
	return strings.Join(dots, "─")
}

// renderPublishErrorModal renders the publish failure modal with
// retry/cancel options.
func (m *Model) renderPublishErrorModal() string {
	t := theme.Current()

	titleText := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Error)).
		MarginBottom(1).
		Render("⚠ Publish Failed")

	messageText := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		MarginBottom(1).
		Render(fmt.Sprintf("Failed to publish product: %s", m.publishError))

	buttons := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render("Press Y to retry, N or ESC to cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleText,
		messageText,
		"",
		buttons,
	)

	return lipgloss.NewStyle().
		Width(60).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Error)).
		Render(content)
}

// renderSuccessScreen renders the post-publish confirmation.
func (m *Model) renderSuccessScreen() string {
	t := theme.Current()
	p := m.published

	var b strings.Builder
	b.WriteString(t.S().SuccessText.Render("✓ Product Published!"))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)

	b.WriteString(label.Render("Title:       "))
	b.WriteString(value.Render(p.TitleEnglish))
	b.WriteString("\n")
	if p.Price > 0 {
		b.WriteString(label.Render("Price:       "))
		b.WriteString(value.Render(fmt.Sprintf("₹%.0f", p.Price)))
		b.WriteString("\n")
	}
	b.WriteString(label.Render("Certificate: "))
	b.WriteString(value.Render(p.Certificate))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Render("Your product is live in the catalog with an authenticity\ncertificate. Share it from the dashboard when you are ready."))
	b.WriteString("\n\n")
	b.WriteString(wizard.RenderHintBar("enter", "done"))

	return lipgloss.NewStyle().
		Width(modalWidth).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Success)).
		Render(b.String())
}

// hasButtons returns true if the current step uses the wizard-level
// Back/Next bar. Generation and review handle their own navigation.
func (m *Model) hasButtons() bool {
	id := m.seq.Current()
	return id != flow.StepGenerate && id != flow.StepReview
}

// ensureButtonBar creates or refreshes the button bar for the current
// step. Bars are cached per step so focus survives re-renders; the Next
// button's enabled state is re-derived from the step gate every time.
func (m *Model) ensureButtonBar() {
	id := m.seq.Current()

	var cached *wizard.ButtonBar
	switch id {
	case flow.StepPhotos:
		cached = m.photosButtonBar
	case flow.StepStory:
		cached = m.storyButtonBar
	case flow.StepDetails:
		cached = m.detailsButtonBar
	}

	canNext := flow.CanAdvance(id, m.draft)

	if cached != nil {
		cached.SetEnabled(int(wizard.ButtonNext), canNext)
		m.buttonBar = cached
		return
	}

	newBar := wizard.NewButtonBar(wizard.CreateBackNextButtons(!m.seq.IsFirst(), canNext, "Next →"))
	newBar.SetWidth(modalContentWidth)

	switch id {
	case flow.StepPhotos:
		m.photosButtonBar = newBar
	case flow.StepStory:
		m.storyButtonBar = newBar
	case flow.StepDetails:
		m.detailsButtonBar = newBar
	}

	m.buttonBar = newBar
}

// activateButton handles button activation.
func (m *Model) activateButton(btnID wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch btnID {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonNext:
		return m.goNext()
	}
	return m, nil
}

// goBack moves to the previous step.
func (m *Model) goBack() (tea.Model, tea.Cmd) {
	if m.seq.Retreat() {
		m.buttonFocused = false
		m.buttonBar = nil
		return m, m.initCurrentStep()
	}
	return m, nil
}

// goNext advances when the current step's gate is satisfied.
func (m *Model) goNext() (tea.Model, tea.Cmd) {
	if !flow.CanAdvance(m.seq.Current(), m.draft) {
		return m, nil
	}
	if m.seq.Advance() {
		m.buttonFocused = false
		m.buttonBar = nil
		return m, m.initCurrentStep()
	}
	return m, nil
}

// focusStepContentFirst focuses the first element in step content.
func (m *Model) focusStepContentFirst() {
	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep != nil {
			m.photosStep.Focus()
		}
	case flow.StepStory:
		if m.storyStep != nil {
			m.storyStep.Focus()
		}
	case flow.StepDetails:
		if m.detailsStep != nil {
			m.detailsStep.Focus()
		}
	}
}

// focusStepContentLast focuses the last element in step content.
func (m *Model) focusStepContentLast() {
	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep != nil {
			m.photosStep.Focus()
		}
	case flow.StepStory:
		if m.storyStep != nil {
			m.storyStep.FocusLast()
		}
	case flow.StepDetails:
		if m.detailsStep != nil {
			m.detailsStep.FocusLast()
		}
	}
}

// blurStepContent blurs all step content.
func (m *Model) blurStepContent() {
	switch m.seq.Current() {
	case flow.StepPhotos:
		if m.photosStep != nil {
			m.photosStep.Blur()
		}
	case flow.StepStory:
		if m.storyStep != nil {
			m.storyStep.Blur()
		}
	case flow.StepDetails:
		if m.detailsStep != nil {
			m.detailsStep.Blur()
		}
	}
}
