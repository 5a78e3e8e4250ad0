package ports

import (
	"context"
	"time"

	"forwardtask/internal/domain"
)

// DocumentStore reads and writes whole notes inside the vault
type DocumentStore interface {
	// Read returns the full text of a note
	Read(ctx context.Context, id domain.DocumentID) (string, error)

	// Write replaces the full text of a note
	Write(ctx context.Context, id domain.DocumentID, text string) error
}

// DailyNotes resolves daily notes by day offset
type DailyNotes interface {
	// Resolve returns the daily note for today+offset, creating it if absent
	Resolve(ctx context.Context, offset int) (domain.DocumentID, error)

	// Preview returns the note for today+offset and its current text without
	// creating it; an absent note yields the text it would be created with
	Preview(ctx context.Context, offset int) (domain.DocumentID, string, error)

	// DateOf reports the date a daily note stands for; false for any other note
	DateOf(id domain.DocumentID) (time.Time, bool)
}
