package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forwardtask/internal/application/commands"
)

var addDays int

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new task to a daily note",
	Long: `Add an open task to today's daily note, or the note --days from today.
The task goes under the configured section header like a moved task.

Examples:
  forwardtask-cli add Buy milk
  forwardtask-cli add --days 1 "Call mom"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		add := commands.NewAddTaskCommand(a.Services(nil, nil), strings.Join(args, " "), addDays)
		result, err := add.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&addDays, "days", "d", 0, "days from today")
	rootCmd.AddCommand(addCmd)
}
