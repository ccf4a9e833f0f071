package cli

import (
	"context"
	"fmt"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/spf13/cobra"
)

func newPackageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Manage diet packages",
	}

	cmd.AddCommand(
		newPackageAddCmd(app),
		newPackageListCmd(app),
		newPackageInspectCmd(app),
		newPackageUpdateCmd(app),
		newPackageRemoveCmd(app),
		newPackageSetRecipesCmd(app),
	)

	return cmd
}

// resolvePackage accepts either a package ID or a package name.
func resolvePackage(ctx context.Context, app *App, input string) (*domain.Package, error) {
	if pkg, err := app.Packages.GetByID(ctx, input); err == nil {
		return pkg, nil
	}
	return app.Packages.GetByName(ctx, input)
}

func newPackageAddCmd(app *App) *cobra.Command {
	var (
		name, description, savePath string
		lists, days                 int
		weightChange                float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new diet package",
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := &domain.Package{
				Name:                name,
				Description:         description,
				ListCount:           lists,
				DaysPerList:         days,
				WeightChangePerList: weightChange,
				SavePath:            savePath,
			}
			if err := app.Packages.Create(context.Background(), pkg); err != nil {
				return err
			}
			successf("Created package %s: %d list(s) x %d day(s) [%s]\n",
				pkg.Name, pkg.ListCount, pkg.DaysPerList, pkg.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Package name")
	cmd.Flags().StringVar(&description, "description", "", "Package description")
	cmd.Flags().IntVar(&lists, "lists", 1, "Number of lists")
	cmd.Flags().IntVar(&days, "days", 4, "Days per list")
	cmd.Flags().Float64Var(&weightChange, "weight-change", 0, "Expected weight change per list in kg (negative = loss)")
	cmd.Flags().StringVar(&savePath, "save-path", "", "Output directory override for this package")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPackageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List diet packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, err := app.Packages.List(context.Background())
			if err != nil {
				return err
			}
			if len(packages) == 0 {
				fmt.Println("No packages found.")
				return nil
			}
			headerf("%-20s %6s %6s %8s %6s\n", "NAME", "LISTS", "DAYS", "KG/LIST", "TOTAL")
			for _, p := range packages {
				fmt.Printf("%-20s %6d %6d %8.1f %6d\n",
					p.Name, p.ListCount, p.DaysPerList, p.WeightChangePerList, p.TotalDays())
			}
			return nil
		},
	}
}

func newPackageInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show package details and its recipes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pkg, err := resolvePackage(ctx, app, args[0])
			if err != nil {
				return err
			}
			headerf("%s\n", pkg.Name)
			if pkg.Description != "" {
				fmt.Println(pkg.Description)
			}
			fmt.Printf("Lists: %d  Days per list: %d  Weight change: %.1f kg/list  Total: %d days\n",
				pkg.ListCount, pkg.DaysPerList, pkg.WeightChangePerList, pkg.TotalDays())
			if pkg.SavePath != "" {
				fmt.Printf("Save path: %s\n", pkg.SavePath)
			}

			ids, err := app.Packages.ListRecipeIDs(ctx, pkg.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Recipes: %d\n", len(ids))
			return nil
		},
	}
}

func newPackageUpdateCmd(app *App) *cobra.Command {
	var (
		description, savePath string
		lists, days           int
		weightChange          float64
	)

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a diet package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pkg, err := resolvePackage(ctx, app, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("description") {
				pkg.Description = description
			}
			if cmd.Flags().Changed("lists") {
				pkg.ListCount = lists
			}
			if cmd.Flags().Changed("days") {
				pkg.DaysPerList = days
			}
			if cmd.Flags().Changed("weight-change") {
				pkg.WeightChangePerList = weightChange
			}
			if cmd.Flags().Changed("save-path") {
				pkg.SavePath = savePath
			}
			if err := app.Packages.Update(ctx, pkg); err != nil {
				return err
			}
			successf("Updated package %s\n", pkg.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().IntVar(&lists, "lists", 0, "New list count")
	cmd.Flags().IntVar(&days, "days", 0, "New days per list")
	cmd.Flags().Float64Var(&weightChange, "weight-change", 0, "New weight change per list in kg")
	cmd.Flags().StringVar(&savePath, "save-path", "", "New output directory override")

	return cmd
}

func newPackageRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a diet package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pkg, err := resolvePackage(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Packages.Delete(ctx, pkg.ID); err != nil {
				return err
			}
			successf("Deleted package %s\n", pkg.Name)
			return nil
		},
	}
}

func newPackageSetRecipesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-recipes NAME RECIPE_ID...",
		Short: "Replace the package's recipe membership",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pkg, err := resolvePackage(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Packages.SetRecipes(ctx, pkg.ID, args[1:]); err != nil {
				return err
			}
			successf("Package %s now holds %d recipe(s)\n", pkg.Name, len(args)-1)
			return nil
		},
	}
}
