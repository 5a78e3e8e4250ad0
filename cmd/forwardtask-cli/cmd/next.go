package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forwardtask/internal/domain"
)

var nextLine int

var nextCmd = &cobra.Command{
	Use:   "next <file>",
	Short: "Print the first open task after a line",
	Long: `Print the number and text of the first open task below --line in <file>.
Use --line 0 to search from the top. Exits with status 1 when none is left.

Example:
  forwardtask-cli next Projects/Plan.md --line 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if nextLine < 0 {
			return fmt.Errorf("--line must not be negative")
		}
		ed, err := GetApp().OpenEditor(cmd.Context(), args[0], max(nextLine-1, 0))
		if err != nil {
			return err
		}

		next, ok := domain.FindNextOpenTask(ed.Lines(), nextLine-1)
		if !ok {
			return fmt.Errorf("no open task after line %d", nextLine)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", next+1, ed.Line(next))
		return nil
	},
}

func init() {
	nextCmd.Flags().IntVarP(&nextLine, "line", "l", 0, "line to search after, starting at 1")
	rootCmd.AddCommand(nextCmd)
}
