package createwizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
)

// ReviewStep shows the finished listing as rendered markdown for a final
// check before publishing. The long description can be polished in the
// user's $EDITOR.
type ReviewStep struct {
	viewport      viewport.Model
	draft         *draft.Draft
	buttonBar     *wizard.ButtonBar
	buttonFocused bool
	width         int
	height        int
	tmpFile       string
}

// NewReviewStep creates the review step over the shared draft.
func NewReviewStep(d *draft.Draft) *ReviewStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SetContent(renderMarkdown(listingMarkdown(d), 60))

	bar := wizard.NewButtonBar([]wizard.Button{
		{Label: "← Back", State: wizard.ButtonNormal},
		{Label: "Publish", State: wizard.ButtonNormal},
	})

	return &ReviewStep{
		viewport:  vp,
		draft:     d,
		buttonBar: bar,
		width:     60,
		height:    20,
	}
}

// listingMarkdown renders the draft and its generated listing as a
// markdown preview document.
func listingMarkdown(d *draft.Draft) string {
	var b strings.Builder

	title := "Handcrafted Item"
	if g := d.Generated; g != nil && g.TitleEnglish != "" {
		title = g.TitleEnglish
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if g := d.Generated; g != nil {
		if g.TitleHindi != "" {
			fmt.Fprintf(&b, "**%s**\n\n", g.TitleHindi)
		}
		if g.DescriptionShort != "" {
			fmt.Fprintf(&b, "%s\n\n", g.DescriptionShort)
		}
		if long := d.LongDescription(); long != "" {
			fmt.Fprintf(&b, "%s\n\n", long)
		}
		if g.SuggestedPrice > 0 {
			fmt.Fprintf(&b, "**Price:** ₹%.0f", g.SuggestedPrice)
			if g.BulkPrice > 0 {
				fmt.Fprintf(&b, " (bulk ₹%.0f)", g.BulkPrice)
			}
			b.WriteString("\n\n")
		}
	} else if d.TextDescription != "" {
		fmt.Fprintf(&b, "%s\n\n", d.TextDescription)
	}

	b.WriteString("## Details\n\n")
	if d.CraftType != "" {
		fmt.Fprintf(&b, "- **Craft:** %s\n", d.CraftType.Label())
	}
	if len(d.Materials) > 0 {
		fmt.Fprintf(&b, "- **Materials:** %s\n", strings.Join(d.Materials, ", "))
	}
	if d.Location != "" {
		fmt.Fprintf(&b, "- **Location:** %s\n", d.Location)
	}
	if len(d.TargetMarkets) > 0 {
		fmt.Fprintf(&b, "- **Markets:** %s\n", strings.Join(d.TargetMarkets, ", "))
	}
	fmt.Fprintf(&b, "- **Photos:** %d\n", len(d.Images))
	if d.VoiceNote != "" {
		fmt.Fprintf(&b, "- **Voice note:** %s\n", filepath.Base(d.VoiceNote))
	}

	if g := d.Generated; g != nil {
		b.WriteString("\n## Marketing\n\n")
		if len(g.Hashtags) > 0 {
			fmt.Fprintf(&b, "- **Hashtags:** #%s\n", strings.Join(g.Hashtags, " #"))
		}
		if g.InstagramCaption != "" {
			fmt.Fprintf(&b, "- **Instagram:** %s\n", g.InstagramCaption)
		}
		if g.WhatsappMessage != "" {
			fmt.Fprintf(&b, "- **WhatsApp:** %s\n", g.WhatsappMessage)
		}
		if g.AuthenticityStory != "" {
			fmt.Fprintf(&b, "\n> %s\n", g.AuthenticityStory)
		}
	}

	return b.String()
}

// renderMarkdown renders markdown content with syntax highlighting using
// glamour. Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSuffix(rendered, "\n")
}

// Init initializes the review step.
func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review step.
func (s *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if s.buttonFocused {
			switch msg.String() {
			case "tab", "right":
				if !s.buttonBar.FocusNext() {
					s.buttonBar.FocusFirst()
				}
				return nil
			case "shift+tab", "left":
				if !s.buttonBar.FocusPrev() {
					s.buttonBar.FocusLast()
				}
				return nil
			case "enter", " ":
				return s.activateButton(s.buttonBar.FocusedButton())
			}
			return nil
		}

		switch msg.String() {
		case "tab":
			s.buttonFocused = true
			s.buttonBar.FocusFirst()
			return nil
		case "shift+tab":
			s.buttonFocused = true
			s.buttonBar.FocusLast()
			return nil
		case "e":
			if os.Getenv("EDITOR") != "" {
				return s.openEditor()
			}
		case "p":
			return func() tea.Msg {
				return PublishRequestedMsg{}
			}
		}

	case DescriptionEditedMsg:
		s.applyEdit(msg.Content)
		if s.tmpFile != "" {
			_ = os.Remove(s.tmpFile)
			s.tmpFile = ""
		}
		return nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *ReviewStep) activateButton(id wizard.ButtonID) tea.Cmd {
	switch id {
	case wizard.ButtonBack:
		return func() tea.Msg {
			return PrevStepMsg{}
		}
	case wizard.ButtonNext:
		return func() tea.Msg {
			return PublishRequestedMsg{}
		}
	}
	return nil
}

// applyEdit stores the edited long description on the draft and refreshes
// the preview. The generated record is never rewritten; the edit lives in
// its own field and takes precedence downstream.
func (s *ReviewStep) applyEdit(content string) {
	content = strings.TrimSpace(content)
	if s.draft.Generated != nil {
		s.draft.Apply(draft.Patch{EditedDescription: &content})
	} else {
		s.draft.TextDescription = content
	}
	s.viewport.SetContent(renderMarkdown(listingMarkdown(s.draft), s.width))
	s.viewport.GotoTop()
}

// openEditor launches the user's $EDITOR with the long description.
func (s *ReviewStep) openEditor() tea.Cmd {
	text := s.draft.LongDescription()

	tmpfile, err := os.CreateTemp("", "craftconnect_listing_*.md")
	if err != nil {
		return nil
	}
	if _, err := tmpfile.WriteString(text); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("craftconnect", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return nil
		}
		return DescriptionEditedMsg{Content: string(content)}
	})
}

// View renders the review step.
func (s *ReviewStep) View() string {
	var b strings.Builder

	b.WriteString(s.viewport.View())
	b.WriteString("\n")
	b.WriteString(s.buttonBar.Render())
	b.WriteString("\n")

	if os.Getenv("EDITOR") != "" {
		b.WriteString(wizard.RenderHintBar(
			"↑↓", "scroll",
			"e", "edit description",
			"p", "publish",
			"esc", "back",
		))
	} else {
		b.WriteString(wizard.RenderHintBar(
			"↑↓", "scroll",
			"p", "publish",
			"esc", "back",
		))
	}

	return b.String()
}

// SetSize updates the dimensions for the review step.
func (s *ReviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	s.viewport.SetWidth(width)
	viewportHeight := height - 3
	if viewportHeight < 5 {
		viewportHeight = 5
	}
	s.viewport.SetHeight(viewportHeight)
	s.buttonBar.SetWidth(width)

	s.viewport.SetContent(renderMarkdown(listingMarkdown(s.draft), width))
}

// DescriptionEditedMsg is sent when the external editor returns with the
// edited long description.
type DescriptionEditedMsg struct {
	Content string
}
