package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forwardtask/internal/adapters/notify"
	"forwardtask/internal/adapters/obsidian"
	"forwardtask/internal/adapters/preview"
	"forwardtask/internal/application/commands"
	"forwardtask/internal/ports"
)

var newObsidianOpener = func(vaultPath string) ports.ObsidianOpener {
	return obsidian.NewOpener(vaultPath)
}

var (
	moveLine     int
	moveTomorrow bool
	moveDays     int
	moveNextDay  bool
	moveDryRun   bool
	moveOpen     bool
)

var moveCmd = &cobra.Command{
	Use:   "move <file>",
	Short: "Move the task on a line into a daily note",
	Long: `Move the open task on --line of <file> into a daily note and mark the
source line "- [>]". Lines are numbered from 1.

The target is today's note unless --tomorrow, --days or --next-day is given.
--next-day only works from inside a daily note and targets the day after it.

Examples:
  forwardtask-cli move Projects/Plan.md --line 12
  forwardtask-cli move Projects/Plan.md --line 12 --tomorrow
  forwardtask-cli move Daily/2026-10-15.md --line 4 --next-day
  forwardtask-cli move Projects/Plan.md --line 12 --days 3 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if moveLine < 1 {
			return fmt.Errorf("--line must be 1 or greater")
		}
		if moveNextDay && (moveTomorrow || cmd.Flags().Changed("days")) {
			return fmt.Errorf("--next-day cannot be combined with --tomorrow or --days")
		}

		a := GetApp()
		ctx := cmd.Context()

		ed, err := a.OpenEditor(ctx, args[0], moveLine-1)
		if err != nil {
			return err
		}
		svc := a.Services(ed, notify.NewConsole(cmd.OutOrStdout(), a.Logger))

		var res *commands.MoveTaskResult
		if moveNextDay {
			move := commands.NewMoveTaskRelativeCommand(svc)
			move.DryRun = moveDryRun
			res, err = move.Execute(ctx)
		} else {
			offset := moveDays
			if moveTomorrow {
				offset = 1
			}
			move := commands.NewMoveTaskCommand(svc, offset)
			move.DryRun = moveDryRun
			res, err = move.Execute(ctx)
		}
		if err != nil {
			return notifiedError{err}
		}

		out := cmd.OutOrStdout()
		if res.DryRun {
			fmt.Fprint(out, preview.Render(res.Before, res.After, 2))
			return nil
		}
		if res.NextCursor >= 0 {
			fmt.Fprintf(out, "Next open task: line %d\n", res.NextCursor+1)
		}
		if moveOpen {
			return newObsidianOpener(a.Vault.Root()).OpenDocument(res.Destination)
		}
		return nil
	},
}

func init() {
	moveCmd.Flags().IntVarP(&moveLine, "line", "l", 0, "line of the task, starting at 1")
	moveCmd.Flags().BoolVarP(&moveTomorrow, "tomorrow", "t", false, "move to tomorrow's note")
	moveCmd.Flags().IntVarP(&moveDays, "days", "d", 0, "move to the note this many days from today")
	moveCmd.Flags().BoolVarP(&moveNextDay, "next-day", "n", false, "move to the day after the daily note <file> is")
	moveCmd.Flags().BoolVar(&moveDryRun, "dry-run", false, "show the change to the destination without writing")
	moveCmd.Flags().BoolVar(&moveOpen, "open", false, "open the destination note in Obsidian afterwards")
	_ = moveCmd.MarkFlagRequired("line")
	moveCmd.MarkFlagsMutuallyExclusive("tomorrow", "days")
	rootCmd.AddCommand(moveCmd)
}
