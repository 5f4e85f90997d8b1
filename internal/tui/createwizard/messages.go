package createwizard

import (
	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
)

// NextStepMsg is sent when the user activates the Next button on a gated
// step.
type NextStepMsg struct{}

// PrevStepMsg is sent when the user activates the Back button.
type PrevStepMsg struct{}

// StageElapsedMsg is sent when a pseudo-stage's display duration has
// passed. Run identifies the generation run the tick belongs to; ticks
// from an abandoned run are ignored.
type StageElapsedMsg struct {
	Run int
}

// GenerationResultMsg carries the outcome of the one real generation
// call.
type GenerationResultMsg struct {
	Run     int
	Listing *draft.Listing
	Err     error
}

// GenerationFinishedMsg is sent after a successful generation so the
// wizard advances to the review step.
type GenerationFinishedMsg struct{}

// PublishRequestedMsg is sent when the user activates Publish on the
// review step.
type PublishRequestedMsg struct{}

// PublishedMsg is sent when the product has been stored.
type PublishedMsg struct {
	Product *store.Product
}

// PublishErrorMsg is sent when publishing fails; the wizard shows the
// retry modal.
type PublishErrorMsg struct {
	Err error
}

// RetryPublishMsg is sent when the user confirms a publish retry.
type RetryPublishMsg struct{}
