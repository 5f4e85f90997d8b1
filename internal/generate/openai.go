package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/janhvi-crypto/CraftConnect/internal/config"
	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/logger"
)

// OpenAIClient implements Client using the official openai-go SDK with a
// JSON-schema response format, so the reply parses directly into a Listing.
type OpenAIClient struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIClient builds a client from config. The API key is required; the
// base URL is optional and supports OpenAI-compatible endpoints.
func NewOpenAIClient(cfg *config.Config) (*OpenAIClient, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.LLMAPIKey == "" {
		return nil, errors.New("llm api key missing; set llm_api_key or CRAFTCONNECT_LLM_API_KEY")
	}
	if cfg.LLMModel == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.LLMAPIKey)}
	if cfg.LLMBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLMBaseURL))
	}
	return &OpenAIClient{model: cfg.LLMModel, opts: opts}, nil
}

// Generate issues exactly one chat completion and decodes the structured
// reply. Any transport, schema, or decode failure is returned to the caller;
// nothing is retried here.
func (c *OpenAIClient) Generate(ctx context.Context, d *draft.Draft) (*draft.Listing, error) {
	client := openai.NewClient(c.opts...)

	logger.Debug("Issuing generation call: model=%s craft=%s", c.model, d.CraftType)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(d)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "product_listing",
					Schema: ResponseSchema(),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		logger.Error("Generation call failed: %v", err)
		return nil, fmt.Errorf("generation call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("generation call: empty choices")
	}

	var listing draft.Listing
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &listing); err != nil {
		logger.Error("Generation reply did not match schema: %v", err)
		return nil, fmt.Errorf("decoding generation reply: %w", err)
	}
	if listing.TitleEnglish == "" {
		return nil, errors.New("generation reply missing title_english")
	}

	logger.Debug("Generation call succeeded: title=%q price=%.0f", listing.TitleEnglish, listing.SuggestedPrice)
	return &listing, nil
}
