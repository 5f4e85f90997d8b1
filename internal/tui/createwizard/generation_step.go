package createwizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/generate"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/wizard"
)

const progressBarWidth = 40

// GenerationStep drives AI listing generation. It shows the staged
// progress display, issues the one real service call when the stages
// finish, and lands in a visible failure state with a retry option when
// the call fails. Generation starts only on an explicit keypress.
type GenerationStep struct {
	orch   *generate.Orchestrator
	client generate.Client
	draft  *draft.Draft
	run    int // token of the active run, mirrored from Start
	width  int
	height int
}

// NewGenerationStep creates the generation step over the shared draft.
func NewGenerationStep(d *draft.Draft, client generate.Client) *GenerationStep {
	return &GenerationStep{
		orch:   generate.NewOrchestrator(),
		client: client,
		draft:  d,
	}
}

// Init initializes the generation step.
func (g *GenerationStep) Init() tea.Cmd {
	return nil
}

// Orchestrator exposes the state machine for the wizard's gating logic.
func (g *GenerationStep) Orchestrator() *generate.Orchestrator {
	return g.orch
}

// Cancel abandons any in-flight generation. Called by the wizard when the
// user leaves the step; a late result from the abandoned run is dropped.
func (g *GenerationStep) Cancel() {
	g.orch.Cancel()
}

// Update handles messages for the generation step.
func (g *GenerationStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			switch g.orch.State() {
			case generate.StateIdle:
				return g.start()
			case generate.StateCompleted:
				// Revisiting a finished run: the listing already
				// exists, so enter just returns to review.
				return func() tea.Msg {
					return GenerationFinishedMsg{}
				}
			}
		case "r":
			if g.orch.State() == generate.StateFailed {
				return g.start()
			}
		}

	case StageElapsedMsg:
		// Ticks carry the run token; a tick from a cancelled run is
		// ignored.
		if msg.Run != g.run || g.orch.State() != generate.StateRunningStages {
			return nil
		}
		next, more := g.orch.AdvanceStage()
		if more {
			return stageTick(next.Duration, msg.Run)
		}
		// Stages exhausted: issue the real call.
		return g.call(msg.Run)

	case GenerationResultMsg:
		if msg.Err != nil {
			g.orch.Fail(msg.Run, msg.Err)
			return nil
		}
		if !g.orch.Complete(msg.Run) {
			return nil
		}
		g.draft.Apply(draft.Patch{Generated: msg.Listing})
		return func() tea.Msg {
			return GenerationFinishedMsg{}
		}
	}

	return nil
}

// start kicks off a generation run and schedules the first stage tick.
func (g *GenerationStep) start() tea.Cmd {
	first, run, ok := g.orch.Start()
	if !ok {
		return nil
	}
	g.run = run
	return stageTick(first.Duration, run)
}

// call issues the single generation request in the background.
func (g *GenerationStep) call(run int) tea.Cmd {
	client := g.client
	d := g.draft
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generate.CallTimeout)
		defer cancel()

		listing, err := client.Generate(ctx, d)
		return GenerationResultMsg{Run: run, Listing: listing, Err: err}
	}
}

func stageTick(d time.Duration, run int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StageElapsedMsg{Run: run}
	})
}

// View renders the generation step content.
func (g *GenerationStep) View() string {
	t := theme.Current()

	switch g.orch.State() {
	case generate.StateIdle:
		return g.viewIdle(t)
	case generate.StateFailed:
		return g.viewFailed(t)
	case generate.StateCompleted:
		return g.viewCompleted(t)
	default:
		return g.viewRunning(t)
	}
}

func (g *GenerationStep) viewCompleted(t *theme.Theme) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Success)).
		Bold(true).
		MarginBottom(1).
		Render("✓ Listing Generated")

	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Render("Your AI listing is ready and waiting on the review step.")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		message,
		"",
		wizard.RenderHintBar("enter", "review listing", "esc", "back"),
	)
}

func (g *GenerationStep) viewIdle(t *theme.Theme) string {
	instruction := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		MarginBottom(1).
		Render("Ready to create your listing. The AI will write titles,\ndescriptions, pricing, and marketing content from your photos,\nstory, and details.")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle))
	summary := summaryStyle.Render(fmt.Sprintf(
		"%d photo(s) • %s • %d material(s) • %s",
		len(g.draft.Images),
		g.draft.CraftType.Label(),
		len(g.draft.Materials),
		g.draft.Location,
	))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		instruction,
		summary,
		"",
		wizard.RenderHintBar("enter", "generate", "esc", "back"),
	)
}

func (g *GenerationStep) viewRunning(t *theme.Theme) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Bold(true).
		Render("Creating your product listing...")
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(g.renderProgressBar(t))
	b.WriteString("\n\n")

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Bold(true)
	pendingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))

	current := g.orch.StageIndex()
	calling := g.orch.State() == generate.StateCalling || g.orch.State() == generate.StateCompleted
	for i, stage := range g.orch.Stages() {
		switch {
		case calling || i < current:
			b.WriteString(doneStyle.Render("✓ " + stage.Title))
		case i == current:
			b.WriteString(activeStyle.Render("▸ " + stage.Title))
		default:
			b.WriteString(pendingStyle.Render("· " + stage.Title))
		}
		b.WriteString("\n")
	}

	if calling {
		b.WriteString("\n")
		b.WriteString(activeStyle.Render("▸ Finalizing your listing"))
		b.WriteString("\n")
	}

	return b.String()
}

func (g *GenerationStep) viewFailed(t *theme.Theme) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Error)).
		Bold(true).
		MarginBottom(1).
		Render("⚠ Generation Failed")

	errMsg := "unknown error"
	if err := g.orch.Err(); err != nil {
		errMsg = err.Error()
	}
	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Render("Could not generate the listing: " + errMsg)

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render("Your photos, story, and details are safe.\nRetry when you are ready, or go back and publish without AI content.")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		message,
		"",
		help,
		"",
		wizard.RenderHintBar("r", "retry", "esc", "back"),
	)
}

func (g *GenerationStep) renderProgressBar(t *theme.Theme) string {
	percent := g.orch.Progress()
	filledWidth := percent * progressBarWidth / 100

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", progressBarWidth-filledWidth)

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Render(filled) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface1)).Render(empty)

	return fmt.Sprintf("[%s] %d%%", bar, percent)
}

// SetSize updates the size of the generation step.
func (g *GenerationStep) SetSize(width, height int) {
	g.width = width
	g.height = height
}
