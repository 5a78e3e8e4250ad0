package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"forwardtask/internal/app"
)

var (
	vaultPath  string
	configPath string
	ws         *app.App
)

var rootCmd = &cobra.Command{
	Use:   "forwardtask-cli",
	Short: "Move open tasks into Obsidian daily notes",
	Long: `forwardtask-cli moves an open "- [ ]" task from any note in an Obsidian
vault into today's, tomorrow's or any other daily note. The original line is
kept and marked "- [>]" so the note records where the task went.

The destination note is created from the Daily Notes template when it does
not exist yet. Set a section header to collect moved tasks under a heading.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		a, err := app.Open(app.Options{
			ConfigPath: configPath,
			Vault:      vaultPath,
			LogOutput:  os.Stderr,
		})
		if err != nil {
			return err
		}
		ws = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ws == nil {
			return nil
		}
		return ws.Close()
	},
}

// notifiedError is a failure the user has already seen as a notice
type notifiedError struct{ err error }

func (e notifiedError) Error() string { return e.err.Error() }
func (e notifiedError) Unwrap() error { return e.err }

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var notified notifiedError
		if !errors.As(err, &notified) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", "", "path to the vault (default $FORWARDTASK_VAULT, then config)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
}

// GetApp returns the wired application
func GetApp() *app.App {
	return ws
}
