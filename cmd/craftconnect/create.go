package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/janhvi-crypto/CraftConnect/internal/config"
	"github.com/janhvi-crypto/CraftConnect/internal/generate"
	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/janhvi-crypto/CraftConnect/internal/media"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/createwizard"
)

var createFlags struct {
	offline bool
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product listing via the guided wizard",
	Long: `Create a product listing via the guided wizard.

The wizard walks through five steps: photos, story, details, AI generation,
and review. The generation step sends your photos and story to the configured
LLM and produces a complete listing: bilingual titles, descriptions, pricing,
SEO tags, and marketing content. Use --offline to skip the LLM and fill the
listing from your inputs alone.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./craftconnect.yml
Global config: ~/.config/craftconnect/craftconnect.yml`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createFlags.offline, "offline", false, "Generate the listing locally without calling the LLM")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	ctx := ensureContext(cmd.Context())
	handle, err := store.Open(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = handle.Close() }()

	intake, err := media.NewIntake(filepath.Join(cfg.DataDir, "media"))
	if err != nil {
		return fmt.Errorf("failed to prepare media directory: %w", err)
	}

	return createwizard.Run(cfg, client, handle.Store, intake)
}

// buildClient picks the generation backend. Without an API key the
// wizard still works: the mock client derives a listing from the
// artisan's own inputs.
func buildClient(cfg *config.Config) (generate.Client, error) {
	if createFlags.offline {
		return &generate.MockClient{}, nil
	}
	if cfg.LLMAPIKey == "" {
		logger.Warn("No LLM API key configured, falling back to offline generation")
		fmt.Println("No LLM API key configured (set CRAFTCONNECT_LLM_API_KEY or run 'craftconnect setup').")
		fmt.Println("Continuing in offline mode: the listing will be derived from your inputs.")
		return &generate.MockClient{}, nil
	}
	return generate.NewOpenAIClient(cfg)
}

// ensureContext guards against cobra commands constructed without one.
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
