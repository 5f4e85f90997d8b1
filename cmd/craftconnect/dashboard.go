package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janhvi-crypto/CraftConnect/internal/config"
	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"home"},
	Short:   "Show your catalog overview and quick actions",
	Long: `Show your catalog overview and quick actions.

The dashboard greets you by name, shows catalog stats and your most recent
products, and offers quick actions. Selecting "Create Product" launches the
listing wizard directly.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	ctx := ensureContext(cmd.Context())
	handle, err := store.Open(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	action, runErr := dashboard.Run(handle.Store)

	// The wizard opens its own store handle, so release this one before
	// chaining into create.
	if err := handle.Close(); err != nil {
		logger.Warn("Failed to close catalog cleanly: %v", err)
	}
	if runErr != nil {
		return runErr
	}

	if action == dashboard.ActionCreateProduct {
		return runCreate(cmd, nil)
	}
	return nil
}
