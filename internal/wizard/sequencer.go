// Package wizard defines the step sequence for the product creation flow:
// an ordered list of typed step IDs with saturating forward/backward
// navigation and per-step advance gating over the draft.
package wizard

import "github.com/janhvi-crypto/CraftConnect/internal/draft"

// StepID identifies one step of the creation wizard.
type StepID int

const (
	StepPhotos StepID = iota
	StepStory
	StepDetails
	StepGenerate
	StepReview
)

// String returns the step's stable identifier.
func (s StepID) String() string {
	switch s {
	case StepPhotos:
		return "photos"
	case StepStory:
		return "story"
	case StepDetails:
		return "details"
	case StepGenerate:
		return "generate"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// StepInfo carries display metadata for one step.
type StepInfo struct {
	ID          StepID
	Title       string
	Description string
}

// Steps returns the fixed wizard sequence in order.
func Steps() []StepInfo {
	return []StepInfo{
		{StepPhotos, "Upload Photos", "Add beautiful photos of your craft"},
		{StepStory, "Share Your Story", "Record your voice or type details"},
		{StepDetails, "Basic Information", "Craft type, location, pricing hints"},
		{StepGenerate, "AI Magic", "Let AI create your perfect listing"},
		{StepReview, "Review & Publish", "Final check and publish to marketplace"},
	}
}

// Sequencer tracks the current position in the step sequence. Movement is
// always by exactly one step; calls past either end are no-ops.
type Sequencer struct {
	index int
}

// NewSequencer starts at the first step.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Current returns the active step.
func (s *Sequencer) Current() StepID {
	return Steps()[s.index].ID
}

// Index returns the zero-based position of the active step.
func (s *Sequencer) Index() int {
	return s.index
}

// Count returns the total number of steps.
func (s *Sequencer) Count() int {
	return len(Steps())
}

// Advance moves to the next step. Returns false (and stays put) when
// already on the last step. Advance does not check gating; callers consult
// CanAdvance before invoking.
func (s *Sequencer) Advance() bool {
	if s.index >= s.Count()-1 {
		return false
	}
	s.index++
	return true
}

// Retreat moves to the previous step. Returns false (and stays put) when
// already on the first step.
func (s *Sequencer) Retreat() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// IsFirst reports whether the active step is the first one.
func (s *Sequencer) IsFirst() bool {
	return s.index == 0
}

// IsLast reports whether the active step is the last one.
func (s *Sequencer) IsLast() bool {
	return s.index == s.Count()-1
}

// Progress returns the display fraction (index+1)/count.
func (s *Sequencer) Progress() float64 {
	return float64(s.index+1) / float64(s.Count())
}

// gates maps each step to its advance predicate over the draft. The
// generate step is not user-advanceable (the orchestrator advances it on
// completion) and review is terminal, so both gate false.
var gates = map[StepID]func(*draft.Draft) bool{
	StepPhotos:   (*draft.Draft).HasPhotos,
	StepStory:    (*draft.Draft).HasStory,
	StepDetails:  (*draft.Draft).HasDetails,
	StepGenerate: func(*draft.Draft) bool { return false },
	StepReview:   func(*draft.Draft) bool { return false },
}

// CanAdvance reports whether the given step's advance gate is satisfied by
// the draft.
func CanAdvance(id StepID, d *draft.Draft) bool {
	gate, ok := gates[id]
	if !ok {
		return false
	}
	return gate(d)
}
