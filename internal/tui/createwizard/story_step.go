package createwizard

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/media"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
)

// story step focus zones
const (
	storyFocusText = iota
	storyFocusVoice
)

// StoryStep collects the craft's story: a typed description, a voice note
// file, or both. Either one satisfies the step.
type StoryStep struct {
	textarea   textarea.Model
	voiceInput textinput.Model
	draft      *draft.Draft
	intake     *media.Intake
	focus      int
	width      int
	height     int
	err        string
}

// NewStoryStep creates the story step over the shared draft.
func NewStoryStep(d *draft.Draft, intake *media.Intake) *StoryStep {
	ta := textarea.New()
	ta.Placeholder = "Tell the story of this piece...\n\nWho made it? What tradition does it come from?\nWhat makes it special?"
	ta.CharLimit = 5000
	ta.SetHeight(8)
	ta.SetWidth(60)
	ta.SetValue(d.TextDescription)
	ta.Focus()

	vi := textinput.New()
	vi.Placeholder = "or path to a voice recording (.mp3, .m4a, .ogg, .wav)"
	vi.CharLimit = 500

	return &StoryStep{
		textarea:   ta,
		voiceInput: vi,
		draft:      d,
		intake:     intake,
		focus:      storyFocusText,
	}
}

// Init initializes the story step.
func (s *StoryStep) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the story step.
func (s *StoryStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			if s.focus == storyFocusText {
				s.setFocus(storyFocusVoice)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			if s.focus == storyFocusVoice {
				s.setFocus(storyFocusText)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		case "enter":
			if s.focus == storyFocusVoice {
				return s.attachVoiceNote()
			}
		case "ctrl+x":
			if s.focus == storyFocusVoice && s.draft.VoiceNote != "" {
				if s.intake != nil {
					_ = s.intake.Remove(s.draft.VoiceNote)
				}
				s.draft.Apply(draft.Patch{VoiceNote: new(string)})
				return nil
			}
		default:
			if s.err != "" {
				s.err = ""
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case storyFocusText:
		s.textarea, cmd = s.textarea.Update(msg)
		// Keep the draft in sync so the Next gate tracks typing.
		s.draft.TextDescription = s.textarea.Value()
	case storyFocusVoice:
		s.voiceInput, cmd = s.voiceInput.Update(msg)
	}
	return cmd
}

// attachVoiceNote validates the typed path and imports the recording.
func (s *StoryStep) attachVoiceNote() tea.Cmd {
	path := strings.TrimSpace(s.voiceInput.Value())
	if path == "" {
		s.err = "enter a recording path first"
		return nil
	}
	if !media.IsAudio(path) {
		s.err = fmt.Sprintf("unsupported audio type: %s", filepath.Ext(path))
		return nil
	}

	stored := path
	if s.intake != nil {
		var err error
		stored, err = s.intake.AddVoiceNote(path)
		if err != nil {
			s.err = err.Error()
			return nil
		}
	}

	s.draft.VoiceNote = stored
	s.voiceInput.SetValue("")
	s.err = ""
	return nil
}

func (s *StoryStep) setFocus(zone int) {
	s.focus = zone
	switch zone {
	case storyFocusText:
		s.textarea.Focus()
		s.voiceInput.Blur()
	case storyFocusVoice:
		s.textarea.Blur()
		s.voiceInput.Focus()
	}
}

// View renders the story step content.
func (s *StoryStep) View() string {
	t := theme.Current()

	instruction := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		MarginBottom(1).
		Render("Share your craft's story (type it, attach a voice note, or both):")

	textBorder := t.BorderDefault
	if s.focus == storyFocusText {
		textBorder = t.BorderFocused
	}
	textBox := lipgloss.NewStyle().
		Width(62).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(textBorder)).
		Render(s.textarea.View())

	voiceBorder := t.BorderDefault
	if s.focus == storyFocusVoice {
		voiceBorder = t.BorderFocused
	}
	voiceBox := lipgloss.NewStyle().
		Width(62).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(voiceBorder)).
		Render(s.voiceInput.View())

	parts := []string{instruction, textBox, voiceBox}

	if s.draft.VoiceNote != "" {
		attached := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Render("✓ voice note: " + filepath.Base(s.draft.VoiceNote))
		parts = append(parts, attached)
	}

	if s.err != "" {
		parts = append(parts, t.S().ErrorText.Render("✗ "+s.err))
	}

	parts = append(parts, wizard.RenderHintBar("tab", "switch field", "enter", "attach recording"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the size of the story step.
func (s *StoryStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	maxTextareaHeight := height - 10
	if maxTextareaHeight < 5 {
		maxTextareaHeight = 5
	}
	if maxTextareaHeight > 12 {
		maxTextareaHeight = 12
	}
	s.textarea.SetHeight(maxTextareaHeight)
}

// Focus focuses the first input in the step.
func (s *StoryStep) Focus() {
	s.setFocus(storyFocusText)
}

// FocusLast focuses the last input in the step.
func (s *StoryStep) FocusLast() {
	s.setFocus(storyFocusVoice)
}

// Blur blurs all inputs in the step.
func (s *StoryStep) Blur() {
	s.textarea.Blur()
	s.voiceInput.Blur()
}
