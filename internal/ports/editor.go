package ports

import (
	"context"
	"os/exec"

	"forwardtask/internal/domain"
)

// Editor is the active document with a cursor, as seen by a move
type Editor interface {
	Document() domain.DocumentID
	Line(n int) string
	LineCount() int
	Lines() []string
	Cursor() int
	SetCursor(n int)

	// ReplaceLine rewrites line n and persists the document
	ReplaceLine(ctx context.Context, n int, text string) error
}

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor
	// It uses $EDITOR environment variable, falling back to common editors
	OpenFile(path string, line int) error

	// Command returns an exec.Cmd for opening a file in the editor
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string, line int) (*exec.Cmd, error)
}
