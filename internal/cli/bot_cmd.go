package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Control the companion chat bot process",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start [count]",
			Short: "Start the bot process for the given number of lists",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				count := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("count must be a number: %q", args[0])
					}
					count = n
				}
				if err := app.Bot.Start(count); err != nil {
					return err
				}
				successf("Bot started (pid %d)\n", app.Bot.Status().PID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the bot process",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Bot.Stop(); err != nil {
					return err
				}
				successf("Bot stopped\n")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show bot process status",
			RunE: func(cmd *cobra.Command, args []string) error {
				st := app.Bot.Status()
				if !st.Running {
					fmt.Println("Bot is not running.")
					return nil
				}
				fmt.Printf("Bot running (pid %d, since %s)\n",
					st.PID, st.StartedAt.Format("15:04:05"))
				return nil
			},
		},
	)

	return cmd
}
