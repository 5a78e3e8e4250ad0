package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"forwardtask/internal/adapters/editor"
	"forwardtask/internal/adapters/tui"
	"forwardtask/internal/app"
	"forwardtask/internal/logging"
)

func main() {
	vaultFlag := flag.String("vault", "", "path to the vault (default $FORWARDTASK_VAULT, then config)")
	configFlag := flag.String("config", "", "path to the config file")
	lineFlag := flag.Int("line", 1, "line to put the cursor on, starting at 1")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: forwardtask [flags] <note>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Logs would corrupt the alt screen
	var logOutput io.Writer
	if os.Getenv(logging.DebugEnv) != "" {
		logOutput = os.Stderr
	}

	a, err := app.Open(app.Options{ConfigPath: *configFlag, Vault: *vaultFlag, LogOutput: logOutput})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx := context.Background()
	buf, err := a.OpenBuffer(ctx, flag.Arg(0), *lineFlag-1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewApp(ctx, a, buf, editor.NewOpener()), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
