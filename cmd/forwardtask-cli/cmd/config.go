package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"forwardtask/internal/adapters/sqlite"
	"forwardtask/internal/application/commands"
)

const sectionHeaderKey = "section-header"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and change settings",
}

var configGetCmd = &cobra.Command{
	Use:       "get section-header",
	Short:     "Print a setting",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{sectionHeaderKey},
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewGetSectionHeaderCommand(GetApp().Settings).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set section-header [value]",
	Short: "Change a setting",
	Long: `Change a setting. Omit the value to clear it.

Examples:
  forwardtask-cli config set section-header "## Tasks"
  forwardtask-cli config set section-header`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != sectionHeaderKey {
			return fmt.Errorf("unknown setting %q", args[0])
		}
		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		result, err := commands.NewSetSectionHeaderCommand(GetApp().Settings, value).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where settings and the move journal are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:  %s\n", a.Config.File)
		fmt.Fprintf(out, "vault:   %s\n", a.Vault.Root())
		if !a.Config.JournalEnabled() {
			fmt.Fprintln(out, "journal: disabled")
			return nil
		}
		journal := a.Config.Journal.Path
		if journal == "" {
			journal = sqlite.DatabasePath(a.Vault.Root())
		}
		fmt.Fprintf(out, "journal: %s\n", journal)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
