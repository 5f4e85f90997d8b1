package generate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
)

func sampleDraft() *draft.Draft {
	return &draft.Draft{
		Images:          []string{"front.jpg", "detail.jpg"},
		TextDescription: "Hand-thrown terracotta water pot with traditional Rajasthani motifs",
		CraftType:       draft.CraftPottery,
		Materials:       []string{"Clay", "Natural Dyes"},
		PriceHint:       "400-600",
		TargetMarkets:   []string{"Domestic - Premium", "Export - USA"},
		Location:        "Jaipur, Rajasthan",
	}
}

func TestBuildPromptIncludesDraftFields(t *testing.T) {
	prompt := BuildPrompt(sampleDraft())

	assert.Contains(t, prompt, "Indian handcraft item")
	assert.Contains(t, prompt, "Craft Type: pottery")
	assert.Contains(t, prompt, "Materials: Clay, Natural Dyes")
	assert.Contains(t, prompt, "Location: Jaipur, Rajasthan")
	assert.Contains(t, prompt, "Rajasthani motifs")
	assert.Contains(t, prompt, "Price Hint: 400-600")
}

func TestResponseSchemaRequiresAllFields(t *testing.T) {
	schema := ResponseSchema()

	require.Equal(t, "object", schema["type"])
	require.Equal(t, false, schema["additionalProperties"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	required, ok := schema["required"].([]string)
	require.True(t, ok)

	assert.Len(t, required, len(props))
	for _, field := range required {
		assert.Contains(t, props, field)
	}
	assert.Contains(t, props, "title_hindi")
	assert.Contains(t, props, "authenticity_story")
}

func TestMockClientDerivesListingFromDraft(t *testing.T) {
	listing, err := (&MockClient{}).Generate(context.Background(), sampleDraft())
	require.NoError(t, err)

	assert.Contains(t, listing.TitleEnglish, "Pottery")
	assert.NotEmpty(t, listing.TitleHindi)
	assert.NotEmpty(t, listing.DescriptionShort)
	assert.Greater(t, listing.SuggestedPrice, 0.0)
	assert.NotEmpty(t, listing.Hashtags)
}

func TestMockClientTruncatesOnRuneBoundary(t *testing.T) {
	d := sampleDraft()
	d.TextDescription = "ab" + strings.Repeat("म", 200)

	listing, err := (&MockClient{}).Generate(context.Background(), d)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(listing.DescriptionShort))
	assert.Equal(t, 150, utf8.RuneCountInString(listing.DescriptionShort))
}

func TestMockClientError(t *testing.T) {
	boom := errors.New("boom")
	_, err := (&MockClient{Err: boom}).Generate(context.Background(), sampleDraft())
	assert.ErrorIs(t, err, boom)
}

func TestOrchestratorHappyPath(t *testing.T) {
	o := NewOrchestrator()
	require.Equal(t, StateIdle, o.State())
	require.Equal(t, 0, o.Progress())

	first, run, ok := o.Start()
	require.True(t, ok)
	assert.Equal(t, "analyzing", first.ID)
	assert.Equal(t, StateRunningStages, o.State())

	last := o.Progress()
	for {
		assert.GreaterOrEqual(t, o.Progress(), last)
		last = o.Progress()
		if _, more := o.AdvanceStage(); !more {
			break
		}
	}

	require.Equal(t, StateCalling, o.State())
	assert.Equal(t, 90, o.Progress())

	require.True(t, o.Complete(run))
	assert.Equal(t, StateCompleted, o.State())
	assert.Equal(t, 100, o.Progress())
}

func TestOrchestratorProgressReaches100OnlyOnSuccess(t *testing.T) {
	o := NewOrchestrator()
	_, run, _ := o.Start()
	for {
		assert.Less(t, o.Progress(), 100)
		if _, more := o.AdvanceStage(); !more {
			break
		}
	}
	assert.Less(t, o.Progress(), 100)

	require.True(t, o.Fail(run, errors.New("service unavailable")))
	assert.Less(t, o.Progress(), 100)
}

func TestOrchestratorFailureAndRetry(t *testing.T) {
	o := NewOrchestrator()
	_, run, _ := o.Start()
	for {
		if _, more := o.AdvanceStage(); !more {
			break
		}
	}

	require.True(t, o.Fail(run, errors.New("timeout")))
	assert.Equal(t, StateFailed, o.State())
	assert.EqualError(t, o.Err(), "timeout")

	// Retry is an explicit restart from Failed.
	first, run2, ok := o.Start()
	require.True(t, ok)
	assert.Equal(t, "analyzing", first.ID)
	assert.NotEqual(t, run, run2)
	assert.NoError(t, o.Err())

	// The old run's late result must not resurrect anything.
	assert.False(t, o.Complete(run))
}

func TestOrchestratorCancelDropsLateResult(t *testing.T) {
	o := NewOrchestrator()
	_, run, _ := o.Start()
	for {
		if _, more := o.AdvanceStage(); !more {
			break
		}
	}
	require.Equal(t, StateCalling, o.State())

	o.Cancel()
	assert.Equal(t, StateIdle, o.State())
	assert.Equal(t, 0, o.Progress())

	assert.False(t, o.Complete(run))
	assert.False(t, o.Fail(run, errors.New("late failure")))
	assert.Equal(t, StateIdle, o.State())
}

func TestOrchestratorStartIgnoredWhileRunning(t *testing.T) {
	o := NewOrchestrator()
	_, _, ok := o.Start()
	require.True(t, ok)

	_, _, ok = o.Start()
	assert.False(t, ok)
	assert.Equal(t, 0, o.StageIndex())
}

func TestStagesSequence(t *testing.T) {
	stages := Stages()
	require.Len(t, stages, 6)
	assert.Equal(t, "analyzing", stages[0].ID)
	assert.Equal(t, "certificate", stages[5].ID)
	for _, s := range stages {
		assert.Greater(t, s.Duration.Seconds(), 0.0)
		assert.NotEmpty(t, s.Title)
	}
}
