package cmd

import (
	"github.com/spf13/cobra"

	"forwardtask/internal/adapters/editor"
)

var editDays int

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open a daily note in $EDITOR",
	Long: `Open today's daily note, or the note --days from today, in $EDITOR.
The note is created from the Daily Notes template first if needed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, err := GetApp().DailyNotePath(cmd.Context(), editDays)
		if err != nil {
			return err
		}
		return editor.NewOpener().OpenFile(path, 0)
	},
}

func init() {
	editCmd.Flags().IntVarP(&editDays, "days", "d", 0, "days from today")
	rootCmd.AddCommand(editCmd)
}
