package cli

import (
	"context"
	"fmt"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/spf13/cobra"
)

func newRecipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage recipes",
	}

	cmd.AddCommand(
		newRecipeAddCmd(app),
		newRecipeListCmd(app),
		newRecipeInspectCmd(app),
		newRecipeUpdateCmd(app),
		newRecipeRemoveCmd(app),
		newRecipeCopyCmd(app),
		newRecipeMoveCmd(app),
	)

	return cmd
}

func newRecipeAddCmd(app *App) *cobra.Command {
	var name, slot, pool, base, b26, b30, b34 string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := &domain.Recipe{
				Name:          name,
				SlotType:      domain.SlotType(slot),
				PoolType:      pool,
				Content21to25: base,
				Content26to29: b26,
				Content30to33: b30,
				Content34Plus: b34,
			}
			if err := app.Recipes.Create(context.Background(), rec); err != nil {
				return err
			}
			successf("Created recipe %s [%s]\n", rec.Name, rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Recipe name")
	cmd.Flags().StringVar(&slot, "slot", "", "Slot type (kahvalti, ara_ogun_1, ogle, ara_ogun_2, aksam, ara_ogun_3, ozel_icecek)")
	cmd.Flags().StringVar(&pool, "pool", "normal", "Pool the recipe belongs to")
	cmd.Flags().StringVar(&base, "content", "", "Recipe text for the 21-25 band (used as fallback for blank bands)")
	cmd.Flags().StringVar(&b26, "content-26-29", "", "Recipe text for the 26-29 band")
	cmd.Flags().StringVar(&b30, "content-30-33", "", "Recipe text for the 30-33 band")
	cmd.Flags().StringVar(&b34, "content-34-plus", "", "Recipe text for the 34+ band")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("slot")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newRecipeListCmd(app *App) *cobra.Command {
	var pool, slot string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Recipes.List(context.Background(), pool, domain.SlotType(slot))
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Println("No recipes found.")
				return nil
			}
			headerf("%-38s %-12s %-10s %s\n", "ID", "SLOT", "POOL", "NAME")
			for _, r := range recipes {
				fmt.Printf("%-38s %-12s %-10s %s\n", r.ID, r.SlotType, r.PoolType, r.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Filter by pool")
	cmd.Flags().StringVar(&slot, "slot", "", "Filter by slot type")

	return cmd
}

func newRecipeInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show recipe details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Recipes.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			headerf("%s\n", rec.Name)
			fmt.Printf("Slot: %s  Pool: %s\n\n", rec.SlotType, rec.PoolType)
			for _, band := range domain.Bands {
				fmt.Printf("[%s]\n%s\n\n", band, rec.EffectiveContent(band))
			}
			return nil
		},
	}
}

func newRecipeUpdateCmd(app *App) *cobra.Command {
	var name, slot, base, b26, b30, b34 string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := app.Recipes.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			if name != "" {
				rec.Name = name
			}
			if slot != "" {
				rec.SlotType = domain.SlotType(slot)
			}
			if base != "" {
				rec.Content21to25 = base
			}
			if b26 != "" {
				rec.Content26to29 = b26
			}
			if b30 != "" {
				rec.Content30to33 = b30
			}
			if b34 != "" {
				rec.Content34Plus = b34
			}
			if err := app.Recipes.Update(ctx, rec); err != nil {
				return err
			}
			successf("Updated recipe %s\n", rec.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&slot, "slot", "", "New slot type")
	cmd.Flags().StringVar(&base, "content", "", "New 21-25 band text")
	cmd.Flags().StringVar(&b26, "content-26-29", "", "New 26-29 band text")
	cmd.Flags().StringVar(&b30, "content-30-33", "", "New 30-33 band text")
	cmd.Flags().StringVar(&b34, "content-34-plus", "", "New 34+ band text")

	return cmd
}

func newRecipeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID...",
		Short: "Delete one or more recipes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Recipes.BulkDelete(context.Background(), args)
			if err != nil {
				return err
			}
			successf("Deleted %d recipe(s)\n", n)
			return nil
		},
	}
}

func newRecipeCopyCmd(app *App) *cobra.Command {
	var pool string

	cmd := &cobra.Command{
		Use:   "copy ID...",
		Short: "Copy recipes into another pool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Recipes.CopyToPool(context.Background(), args, pool)
			if err != nil {
				return err
			}
			successf("Copied %d recipe(s) to %s\n", n, pool)
			return nil
		},
	}

	cmd.Flags().StringVar(&pool, "to", "", "Target pool")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newRecipeMoveCmd(app *App) *cobra.Command {
	var pool string

	cmd := &cobra.Command{
		Use:   "move ID...",
		Short: "Move recipes into another pool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Recipes.MoveToPool(context.Background(), args, pool)
			if err != nil {
				return err
			}
			successf("Moved %d recipe(s) to %s\n", n, pool)
			return nil
		},
	}

	cmd.Flags().StringVar(&pool, "to", "", "Target pool")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
