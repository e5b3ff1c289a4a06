package cli

import (
	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Nudges       service.NudgeService
	Interactions service.InteractionService
	Profiles     service.ProfileService
	Insights     service.InsightsService
	Catalog      *catalog.Catalog

	// IsTTY gates the interactive surfaces (wizard, nudge view).
	IsTTY bool
}

// NewRootCmd creates the top-level "attune" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "attune",
		Short: "Personality-aware coaching nudges for your terminal",
	}

	root.AddCommand(
		newNudgeCmd(app),
		newLogCmd(app),
		newProfileCmd(app),
		newHistoryCmd(app),
		newCatalogCmd(app),
		newStatsCmd(app),
	)

	return root
}
