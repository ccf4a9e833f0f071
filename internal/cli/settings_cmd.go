package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage engine settings",
	}

	cmd.AddCommand(
		newSettingsListCmd(app),
		newSettingsGetCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.All(context.Background())
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s=%s\n", k, settings[k])
			}
			return nil
		},
	}
}

func newSettingsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Read one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.Settings.Get(context.Background(), args[0], "")
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Write one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Set(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			successf("Set %s\n", args[0])
			return nil
		},
	}
}
