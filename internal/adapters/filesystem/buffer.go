package filesystem

import (
	"context"
	"fmt"
	"strings"

	"forwardtask/internal/domain"
)

// Buffer implements ports.Editor over a note on disk
type Buffer struct {
	vault  *Vault
	id     domain.DocumentID
	lines  []string
	cursor int
}

// OpenBuffer loads a note into a buffer with the cursor on the first line
func OpenBuffer(ctx context.Context, vault *Vault, id domain.DocumentID) (*Buffer, error) {
	b := &Buffer{vault: vault, id: id}
	if err := b.Reload(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload rereads the note from disk, keeping the cursor in range
func (b *Buffer) Reload(ctx context.Context) error {
	text, err := b.vault.Read(ctx, b.id)
	if err != nil {
		return err
	}
	b.lines = strings.Split(text, "\n")
	b.SetCursor(b.cursor)
	return nil
}

func (b *Buffer) Document() domain.DocumentID { return b.id }

// Path returns the absolute path of the note
func (b *Buffer) Path() string {
	p, _ := b.vault.Path(b.id)
	return p
}

func (b *Buffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the buffer contents joined with newlines
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clamped to the buffer
func (b *Buffer) SetCursor(n int) {
	switch {
	case n < 0:
		n = 0
	case n >= len(b.lines):
		n = len(b.lines) - 1
	}
	b.cursor = n
}

// ReplaceLine rewrites line n and saves the note. The note is reread first
// and the new line spliced into it, so edits made elsewhere since the buffer
// was loaded survive. It fails when line n itself changed on disk. The
// buffer is unchanged when the save fails.
func (b *Buffer) ReplaceLine(ctx context.Context, n int, text string) error {
	if n < 0 || n >= len(b.lines) {
		return fmt.Errorf("line %d out of range", n+1)
	}

	current, err := b.vault.Read(ctx, b.id)
	if err != nil {
		return err
	}
	lines := strings.Split(current, "\n")
	if n >= len(lines) || lines[n] != b.lines[n] {
		return fmt.Errorf("%s changed on disk at line %d, reload and try again", b.id, n+1)
	}

	lines[n] = text
	if err := b.vault.Write(ctx, b.id, strings.Join(lines, "\n")); err != nil {
		return err
	}
	b.lines = lines
	b.SetCursor(b.cursor)
	return nil
}
