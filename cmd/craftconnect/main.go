package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/janhvi-crypto/CraftConnect/internal/tui/theme"
)

const (
	logoText1 = "█▀▀ █▀█ ▄▀█ █▀▀ ▀█▀ █▀▀ █▀█ █▄ █ █▄ █ █▀▀ █▀▀ ▀█▀"
	logoText2 = "█▄▄ █▀▄ █▀█ █▀   █  █▄▄ █▄█ █ ▀█ █ ▀█ ██▄ █▄▄  █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "craftconnect",
	Short: "AI-powered marketplace assistant for artisans",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

CraftConnect helps Indian artisans sell their crafts online. Photograph a
product, tell its story in your own words, and let AI generate a complete
bilingual marketplace listing with pricing, SEO tags, and marketing content.
The catalog lives in an embedded NATS JetStream event log, so everything
works offline on a single machine.`

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(setupCmd)
}
