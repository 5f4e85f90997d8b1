package generate

import (
	"time"

	"github.com/janhvi-crypto/CraftConnect/internal/logger"
)

// Stage is one cosmetic progress phase shown before the real call. Durations
// are configuration; the host drives stage advancement on its own timer, so
// the machine itself never sleeps and tests need no clock.
type Stage struct {
	ID       string
	Title    string
	Duration time.Duration
}

// Stages returns the fixed pseudo-stage sequence in display order.
func Stages() []Stage {
	return []Stage{
		{"analyzing", "Analyzing your photos and story", 2 * time.Second},
		{"generating", "Generating product titles and descriptions", 3 * time.Second},
		{"translating", "Creating multilingual content", 2500 * time.Millisecond},
		{"pricing", "Suggesting optimal pricing", 1500 * time.Millisecond},
		{"marketing", "Creating marketing content", 2 * time.Second},
		{"certificate", "Generating authenticity certificate", time.Second},
	}
}

// State is the orchestrator's phase.
type State int

const (
	StateIdle State = iota // waiting for explicit user start
	StateRunningStages
	StateCalling // the one real service call is in flight
	StateCompleted
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunningStages:
		return "running_stages"
	case StateCalling:
		return "calling"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Orchestrator is the generation step's state machine:
//
//	Idle → RunningStages → Calling → Completed
//	                               ↘ Failed → (retry) RunningStages
//
// Starting requires an explicit user trigger. Each run carries a token;
// results delivered with a stale token (after cancel or a newer run) are
// dropped, so a late reply can never overwrite a session the user left.
type Orchestrator struct {
	stages []Stage
	state  State
	stage  int // index into stages, valid in StateRunningStages
	run    int // current run token; bumped on start and cancel
	err    error
}

// NewOrchestrator returns an idle machine over the fixed stage sequence.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{stages: Stages()}
}

// State returns the current phase.
func (o *Orchestrator) State() State { return o.state }

// Err returns the failure from the last run, if any.
func (o *Orchestrator) Err() error { return o.err }

// Stages returns the configured stage sequence.
func (o *Orchestrator) Stages() []Stage { return o.stages }

// StageIndex returns the current pseudo-stage index. Only meaningful while
// RunningStages.
func (o *Orchestrator) StageIndex() int { return o.stage }

// CurrentStage returns the active pseudo-stage while RunningStages.
func (o *Orchestrator) CurrentStage() (Stage, bool) {
	if o.state != StateRunningStages {
		return Stage{}, false
	}
	return o.stages[o.stage], true
}

// Start begins a run from Idle or Failed. It returns the first stage and the
// run token the host must pass back with the call result. Starting in any
// other state is a no-op and returns ok=false.
func (o *Orchestrator) Start() (first Stage, run int, ok bool) {
	if o.state != StateIdle && o.state != StateFailed {
		return Stage{}, 0, false
	}
	o.run++
	o.state = StateRunningStages
	o.stage = 0
	o.err = nil
	logger.Debug("Generation run %d started", o.run)
	return o.stages[0], o.run, true
}

// AdvanceStage moves to the next pseudo-stage. When the last stage finishes
// the machine transitions to Calling and returns more=false: the host must
// then issue the real generation call.
func (o *Orchestrator) AdvanceStage() (next Stage, more bool) {
	if o.state != StateRunningStages {
		return Stage{}, false
	}
	if o.stage < len(o.stages)-1 {
		o.stage++
		return o.stages[o.stage], true
	}
	o.state = StateCalling
	logger.Debug("Generation run %d: stages done, issuing service call", o.run)
	return Stage{}, false
}

// Complete records a successful call for the given run. Stale tokens are
// dropped (returns false) so a cancelled run's late reply is abandoned.
func (o *Orchestrator) Complete(run int) bool {
	if run != o.run || o.state != StateCalling {
		logger.Debug("Dropping stale generation result (run %d, current %d, state %s)", run, o.run, o.state)
		return false
	}
	o.state = StateCompleted
	return true
}

// Fail records a failed call for the given run. Stale tokens are dropped.
// The machine lands in Failed; only an explicit Start (retry) leaves it.
func (o *Orchestrator) Fail(run int, err error) bool {
	if run != o.run || o.state != StateCalling {
		logger.Debug("Dropping stale generation failure (run %d, current %d): %v", run, o.run, err)
		return false
	}
	o.state = StateFailed
	o.err = err
	logger.Error("Generation run %d failed: %v", run, err)
	return true
}

// Cancel abandons any in-flight run and returns to Idle. The run token is
// invalidated, so whatever the abandoned run later delivers is dropped.
func (o *Orchestrator) Cancel() {
	if o.state != StateRunningStages && o.state != StateCalling {
		return
	}
	logger.Debug("Generation run %d cancelled", o.run)
	o.run++
	o.state = StateIdle
	o.stage = 0
	o.err = nil
}

// Progress returns the display percentage. Pseudo-stages scale to 90, the
// in-flight call holds at 90, and 100 is reached only on Completed. The
// value never decreases within a run.
func (o *Orchestrator) Progress() int {
	switch o.state {
	case StateIdle:
		return 0
	case StateRunningStages:
		return (o.stage + 1) * 90 / len(o.stages)
	case StateCalling, StateFailed:
		return 90
	case StateCompleted:
		return 100
	default:
		return 0
	}
}
