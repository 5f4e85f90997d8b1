package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janhvi-crypto/CraftConnect/internal/config"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
)

var setupFlags struct {
	project  bool
	force    bool
	name     string
	location string
	craft    string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create CraftConnect configuration and artisan profile",
	Long: `Create a CraftConnect configuration file and seed your artisan profile.

By default, creates a global config at ~/.config/craftconnect/craftconnect.yml.
Use --project to create a project-local config in the current directory.
Pass --name and --location to register your artisan profile in the catalog.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVar(&setupFlags.name, "name", "", "Artisan name for the profile")
	setupCmd.Flags().StringVar(&setupFlags.location, "location", "", "Artisan location, e.g. \"Jaipur, Rajasthan\"")
	setupCmd.Flags().StringVar(&setupFlags.craft, "craft", "", "Primary craft, e.g. \"Blue Pottery\"")
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := &config.Config{
		DataDir:         ".craftconnect",
		LogLevel:        "info",
		LogFile:         "",
		LLMModel:        "gpt-4o-mini",
		LLMAPIKey:       "",
		LLMBaseURL:      "",
		ArtisanName:     setupFlags.name,
		ArtisanLocation: setupFlags.location,
	}

	// Write config to target location
	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}

	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n", targetPath)

	if setupFlags.name != "" {
		if err := seedProfile(cmd, cfg); err != nil {
			return err
		}
		fmt.Printf("Artisan profile registered: %s\n", setupFlags.name)
	}

	fmt.Println("\nSet CRAFTCONNECT_LLM_API_KEY to enable AI listing generation.")
	fmt.Println("Run 'craftconnect create' to add your first product.")

	return nil
}

// seedProfile writes the artisan profile into the catalog store.
func seedProfile(cmd *cobra.Command, cfg *config.Config) error {
	ctx := ensureContext(cmd.Context())
	handle, err := store.Open(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = handle.Close() }()

	err = handle.Store.ProfileSet(ctx, store.Artisan{
		Name:     setupFlags.name,
		Location: setupFlags.location,
		Craft:    setupFlags.craft,
	})
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
