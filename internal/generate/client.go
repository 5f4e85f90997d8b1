// Package generate produces the AI listing content for a draft: one
// structured call to the generation service, fronted by the staged progress
// orchestrator the wizard's generation step drives.
package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
)

// CallTimeout bounds the single generation call. The generation step must
// land in Failed rather than hang when the service stalls.
const CallTimeout = 90 * time.Second

// Client is the generation capability. Implementations make at most one
// service call per invocation; retries are user-initiated only, since the
// call is billable and non-idempotent.
type Client interface {
	Generate(ctx context.Context, d *draft.Draft) (*draft.Listing, error)
}

// BuildPrompt constructs the listing prompt from the draft's fields.
func BuildPrompt(d *draft.Draft) string {
	return fmt.Sprintf(`Create a comprehensive product listing for an Indian handcraft item based on this information:

Description: %s
Craft Type: %s
Materials: %s
Location: %s
Price Hint: %s
Target Markets: %s

Generate a complete product listing with authentic Indian cultural context. Include pricing suggestions based on craft type and market trends.`,
		d.TextDescription,
		d.CraftType,
		strings.Join(d.Materials, ", "),
		d.Location,
		d.PriceHint,
		strings.Join(d.TargetMarkets, ", "))
}

// ResponseSchema is the JSON schema the service must shape its reply to.
// It mirrors draft.Listing field for field.
func ResponseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title_english":      map[string]any{"type": "string"},
			"title_hindi":        map[string]any{"type": "string"},
			"description_short":  map[string]any{"type": "string"},
			"description_long":   map[string]any{"type": "string"},
			"suggested_price":    map[string]any{"type": "number"},
			"bulk_price":         map[string]any{"type": "number"},
			"hashtags":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"instagram_caption":  map[string]any{"type": "string"},
			"whatsapp_message":   map[string]any{"type": "string"},
			"authenticity_story": map[string]any{"type": "string"},
		},
		"required": []string{
			"title_english", "title_hindi", "description_short", "description_long",
			"suggested_price", "bulk_price", "hashtags", "instagram_caption",
			"whatsapp_message", "authenticity_story",
		},
		"additionalProperties": false,
	}
}
