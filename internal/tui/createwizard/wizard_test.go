package createwizard

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/janhvi-crypto/CraftConnect/internal/config"
	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/generate"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
	flow "github.com/janhvi-crypto/CraftConnect/internal/wizard"
)

// newTestModel builds a wizard model with a mock client and no store,
// sized like a normal terminal.
func newTestModel(t *testing.T, client generate.Client) *Model {
	t.Helper()
	m := New(&config.Config{}, client, nil, nil)
	_ = m.Init()
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// send feeds one message through Update and returns the resulting command.
func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	model, cmd := m.Update(msg)
	if model.(*Model) != m {
		t.Fatal("Update returned a different model instance")
	}
	return cmd
}

// fillPhotos, fillStory, and fillDetails satisfy the step gates directly
// on the shared draft, the way the step components do.
func fillPhotos(m *Model)  { m.Draft().AddImage("pot.jpg") }
func fillStory(m *Model)   { m.Draft().TextDescription = "Hand-thrown terracotta pot from Jaipur" }
func fillDetails(m *Model) {
	m.Draft().CraftType = draft.CraftPottery
	m.Draft().ToggleMaterial("Clay")
	m.Draft().Location = "Jaipur, Rajasthan"
}

// driveToGenerate walks a gate-satisfied model to the generation step.
func driveToGenerate(t *testing.T, m *Model) {
	t.Helper()
	fillPhotos(m)
	send(t, m, NextStepMsg{})
	fillStory(m)
	send(t, m, NextStepMsg{})
	fillDetails(m)
	send(t, m, NextStepMsg{})
	if m.seq.Current() != flow.StepGenerate {
		t.Fatalf("expected generate step, got %v", m.seq.Current())
	}
}

// runGeneration starts a run and replays all stage ticks, returning the
// service-call command produced after the last stage.
func runGeneration(t *testing.T, m *Model) tea.Cmd {
	t.Helper()
	if cmd := send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Fatal("expected first stage tick command")
	}
	run := m.generationStep.run

	stages := len(generate.Stages())
	var callCmd tea.Cmd
	for i := 0; i < stages; i++ {
		callCmd = send(t, m, StageElapsedMsg{Run: run})
	}
	if callCmd == nil {
		t.Fatal("expected service call command after final stage")
	}
	return callCmd
}

func TestGateBlocksAdvance(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{})

	// No photos yet: Next must be a no-op.
	send(t, m, NextStepMsg{})
	if m.seq.Current() != flow.StepPhotos {
		t.Errorf("expected to stay on photos step, got %v", m.seq.Current())
	}

	fillPhotos(m)
	send(t, m, NextStepMsg{})
	if m.seq.Current() != flow.StepStory {
		t.Errorf("expected story step, got %v", m.seq.Current())
	}

	// Ten characters exactly is not enough story.
	m.Draft().TextDescription = "1234567890"
	send(t, m, NextStepMsg{})
	if m.seq.Current() != flow.StepStory {
		t.Errorf("expected short story to block advance, got %v", m.seq.Current())
	}
}

func TestGenerationHappyPath(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{})
	driveToGenerate(t, m)

	callCmd := runGeneration(t, m)
	if st := m.generationStep.Orchestrator().State(); st != generate.StateCalling {
		t.Fatalf("expected calling state, got %v", st)
	}

	// Execute the call; the mock returns instantly.
	resultCmd := send(t, m, callCmd())
	if m.Draft().Generated == nil {
		t.Fatal("expected generated listing on draft")
	}
	if resultCmd == nil {
		t.Fatal("expected finish command")
	}

	send(t, m, resultCmd())
	if m.seq.Current() != flow.StepReview {
		t.Errorf("expected auto-advance to review, got %v", m.seq.Current())
	}
	if got := m.generationStep.Orchestrator().Progress(); got != 100 {
		t.Errorf("expected progress 100 after success, got %d", got)
	}
}

func TestGenerationFailureShowsRetry(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{Err: errors.New("service unavailable")})
	driveToGenerate(t, m)

	callCmd := runGeneration(t, m)
	send(t, m, callCmd())

	orch := m.generationStep.Orchestrator()
	if orch.State() != generate.StateFailed {
		t.Fatalf("expected failed state, got %v", orch.State())
	}
	if m.Draft().Generated != nil {
		t.Error("expected no listing after failure")
	}
	if view := m.renderCurrentStep(); !strings.Contains(view, "Generation Failed") {
		t.Error("expected failure screen in view")
	}

	// Retry restarts the staged run.
	if cmd := send(t, m, tea.KeyPressMsg{Text: "r"}); cmd == nil {
		t.Fatal("expected retry to schedule first stage tick")
	}
	if orch.State() != generate.StateRunningStages {
		t.Errorf("expected running state after retry, got %v", orch.State())
	}
}

func TestLeavingGenerationAbandonsRun(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{})
	driveToGenerate(t, m)

	callCmd := runGeneration(t, m)
	staleResult := callCmd()

	// User bails out mid-call.
	send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.seq.Current() != flow.StepDetails {
		t.Fatalf("expected back on details, got %v", m.seq.Current())
	}

	// Details survive back navigation, so the gate is still open. Coming
	// back and receiving the old run's result must change nothing.
	send(t, m, NextStepMsg{})
	if m.seq.Current() != flow.StepGenerate {
		t.Fatalf("expected generate step again, got %v", m.seq.Current())
	}
	send(t, m, staleResult)

	if m.Draft().Generated != nil {
		t.Error("expected stale result to be dropped")
	}
	if st := m.generationStep.Orchestrator().State(); st != generate.StateIdle {
		t.Errorf("expected idle state, got %v", st)
	}
}

func TestRevisitingCompletedGenerationReturnsToReview(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{})
	driveToGenerate(t, m)

	callCmd := runGeneration(t, m)
	finish := send(t, m, callCmd())
	send(t, m, finish())
	if m.seq.Current() != flow.StepReview {
		t.Fatalf("expected review step, got %v", m.seq.Current())
	}
	listing := m.Draft().Generated

	// Step back onto the finished generation step.
	send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.seq.Current() != flow.StepGenerate {
		t.Fatalf("expected generate step, got %v", m.seq.Current())
	}
	if st := m.generationStep.Orchestrator().State(); st != generate.StateCompleted {
		t.Fatalf("expected completed state, got %v", st)
	}
	if view := m.renderCurrentStep(); !strings.Contains(view, "Listing Generated") {
		t.Error("expected completed screen in view")
	}

	// Enter must lead forward again without a new run.
	cmd := send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected forward command from enter on completed run")
	}
	send(t, m, cmd())
	if m.seq.Current() != flow.StepReview {
		t.Errorf("expected review step again, got %v", m.seq.Current())
	}
	if m.Draft().Generated != listing {
		t.Error("expected the existing listing to be kept")
	}
}

func TestPublishErrorModal(t *testing.T) {
	// nil store makes publishing fail.
	m := newTestModel(t, &generate.MockClient{})
	driveToGenerate(t, m)
	callCmd := runGeneration(t, m)
	finish := send(t, m, callCmd())
	send(t, m, finish())

	pubCmd := send(t, m, PublishRequestedMsg{})
	if pubCmd == nil {
		t.Fatal("expected publish command")
	}
	send(t, m, pubCmd())

	if !m.showPubError {
		t.Fatal("expected publish error modal")
	}
	if view := m.renderCurrentStep(); !strings.Contains(view, "Publish Failed") {
		t.Error("expected publish error modal in view")
	}

	// Y retries, N dismisses.
	if cmd := send(t, m, tea.KeyPressMsg{Text: "y"}); cmd == nil {
		t.Fatal("expected retry command from Y")
	}
	send(t, m, tea.KeyPressMsg{Text: "n"})
	if m.showPubError {
		t.Error("expected modal dismissed after N")
	}
}

func TestPublishSuccessScreen(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{})

	send(t, m, PublishedMsg{Product: &store.Product{
		TitleEnglish: "Royal Terracotta Pot",
		Price:        450,
		Certificate:  "CRAFT-test123",
	}})

	if m.Published() == nil {
		t.Fatal("expected published product")
	}
	view := m.renderCurrentStep()
	if !strings.Contains(view, "Product Published") {
		t.Error("expected success screen")
	}
	if !strings.Contains(view, "CRAFT-test123") {
		t.Error("expected certificate on success screen")
	}

	if cmd := send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Error("expected quit command from enter on success screen")
	}
}

func TestEscOnFirstStepCancels(t *testing.T) {
	m := newTestModel(t, &generate.MockClient{})

	if cmd := send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape}); cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.cancelled {
		t.Error("expected wizard marked cancelled")
	}
}
