package cli

import (
	"github.com/merveatik/dietbot/internal/botproc"
	"github.com/merveatik/dietbot/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Recipes   service.RecipeService
	Templates service.TemplateService
	Packages  service.PackageService
	Pools     service.PoolService
	Settings  service.SettingsService
	Generate  service.GenerateService
	Bot       *botproc.Handle
}

// NewRootCmd creates the top-level "dietbot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dietbot",
		Short: "Diet program generator for a nutrition practice",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newRecipeCmd(app),
		newTemplateCmd(app),
		newPackageCmd(app),
		newPoolCmd(app),
		newSettingsCmd(app),
		newBotCmd(app),
	)

	return root
}
