package cli

import (
	"context"
	"fmt"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/spf13/cobra"
)

func newPoolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage recipe pools",
	}

	cmd.AddCommand(
		newPoolAddCmd(app),
		newPoolListCmd(app),
		newPoolStatsCmd(app),
		newPoolRemoveCmd(app),
	)

	return cmd
}

func newPoolAddCmd(app *App) *cobra.Command {
	var description, colorHex string
	var order int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new recipe pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := &domain.Pool{
				Name:        args[0],
				Description: description,
				Color:       colorHex,
				IsActive:    true,
				SortOrder:   order,
			}
			if err := app.Pools.Create(context.Background(), pool); err != nil {
				return err
			}
			successf("Created pool %s\n", pool.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Pool description")
	cmd.Flags().StringVar(&colorHex, "color", "", "Display color (hex)")
	cmd.Flags().IntVar(&order, "order", 10, "Sort order")

	return cmd
}

func newPoolListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipe pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			pools, err := app.Pools.List(context.Background(), !all)
			if err != nil {
				return err
			}
			headerf("%-14s %-8s %s\n", "NAME", "ACTIVE", "DESCRIPTION")
			for _, p := range pools {
				active := "yes"
				if !p.IsActive {
					active = "no"
				}
				fmt.Printf("%-14s %-8s %s\n", p.Name, active, p.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive pools")

	return cmd
}

func newPoolStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats NAME",
		Short: "Show a pool's recipe coverage per slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Pools.Stats(context.Background(), args[0])
			if err != nil {
				return err
			}
			headerf("Pool %s: %d recipe(s)\n", args[0], stats.TotalRecipes)
			for _, slot := range domain.SlotTypes {
				fmt.Printf("  %-14s %d\n", slot, stats.SlotDistribution[slot])
			}
			if len(stats.MissingSlotTypes) > 0 {
				warnf("Missing slots (generation falls back): %v\n", stats.MissingSlotTypes)
			}
			return nil
		},
	}
}

func newPoolRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete an empty custom pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Pools.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			successf("Deleted pool %s\n", args[0])
			return nil
		},
	}
}
