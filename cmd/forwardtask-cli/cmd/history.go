package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forwardtask/internal/application"
	"forwardtask/internal/application/commands"
)

var (
	historyPending bool
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent moves from the journal",
	Long: `List journaled moves, newest first. A move left "pending" started writing
the destination note but never marked its source line, so the task may now
be in both notes.

Examples:
  forwardtask-cli history
  forwardtask-cli history --pending`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := application.HistoryFilter{Limit: historyLimit}
		if historyPending {
			filter.State = application.MoveStatePending
		}

		result, err := commands.NewHistoryCommand(GetApp().Journal, filter).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range result.Records {
			fmt.Fprintf(out, "%s  %-9s  %s:%d -> %s  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"), r.State, r.Source, r.SourceLine+1, r.Destination, r.TaskText)
			if r.Error != "" {
				fmt.Fprintf(out, "    %s\n", r.Error)
			}
		}
		fmt.Fprintln(out, result.Message)
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyPending, "pending", false, "only moves that never completed")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of moves, 0 for all")
	rootCmd.AddCommand(historyCmd)
}
