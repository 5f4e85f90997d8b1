// Package wizard provides shared building blocks for multi-step wizard
// flows: the button bar with focus tracking and the focus hand-off
// messages steps use to pass keyboard control back to their host.
package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies a button by position in the standard two-button
// layout.
type ButtonID int

const (
	ButtonNone ButtonID = iota - 1
	ButtonBack
	ButtonNext
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and a single
// focus slot. Disabled buttons are skipped during focus traversal.
type ButtonBar struct {
	buttons []Button
	width   int
	focused int // index of focused button, -1 when blurred
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		width:   60,
		focused: -1,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetEnabled enables or disables the button at index. Focus is dropped
// from a button that becomes disabled.
func (b *ButtonBar) SetEnabled(index int, enabled bool) {
	if index < 0 || index >= len(b.buttons) {
		return
	}
	if enabled {
		if b.buttons[index].State == ButtonDisabled {
			b.buttons[index].State = ButtonNormal
		}
	} else {
		b.buttons[index].State = ButtonDisabled
		if b.focused == index {
			b.focused = -1
		}
	}
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.setFocus(b.nextEnabled(-1, +1))
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	b.setFocus(b.nextEnabled(len(b.buttons), -1))
}

// FocusNext moves focus forward. Returns false when focus walked off the
// end, leaving the bar blurred so the host can move focus elsewhere.
func (b *ButtonBar) FocusNext() bool {
	next := b.nextEnabled(b.focused, +1)
	if next == -1 {
		b.Blur()
		return false
	}
	b.setFocus(next)
	return true
}

// FocusPrev moves focus backward. Returns false when focus walked off the
// front.
func (b *ButtonBar) FocusPrev() bool {
	prev := b.nextEnabled(b.focused, -1)
	if prev == -1 {
		b.Blur()
		return false
	}
	b.setFocus(prev)
	return true
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	for i := range b.buttons {
		if b.buttons[i].State == ButtonFocused {
			b.buttons[i].State = ButtonNormal
		}
	}
	b.focused = -1
}

// FocusedButton returns the ID of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 {
		return ButtonNone
	}
	// Single-button bars expose their button as Next.
	if len(b.buttons) == 1 {
		return ButtonNext
	}
	return ButtonID(b.focused)
}

func (b *ButtonBar) setFocus(index int) {
	if index < 0 || index >= len(b.buttons) {
		return
	}
	b.Blur()
	b.buttons[index].State = ButtonFocused
	b.focused = index
}

// nextEnabled scans from the given index in direction dir for an enabled
// button, returning -1 when none remains.
func (b *ButtonBar) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State != ButtonDisabled {
			return i
		}
	}
	return -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	t := theme.Current()

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface0)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary)).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var renderedButtons []string
	for _, btn := range b.buttons {
		var rendered string
		switch btn.State {
		case ButtonDisabled:
			rendered = disabledStyle.Render(btn.Label)
		case ButtonFocused:
			rendered = focusedStyle.Render(btn.Label)
		default: // ButtonNormal
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	// Center the button bar
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}

// CreateBackNextButtons creates the standard Back/Next button set.
// nextEnabled is false while the current step's gate is unmet.
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	buttons := make([]Button, 0, 2)

	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	buttons = append(buttons, Button{
		Label: "← Back",
		State: backState,
	})

	nextState := ButtonNormal
	if !nextEnabled {
		nextState = ButtonDisabled
	}
	buttons = append(buttons, Button{
		Label: nextLabel,
		State: nextState,
	})

	return buttons
}
