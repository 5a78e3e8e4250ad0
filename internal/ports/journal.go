package ports

import (
	"context"

	"forwardtask/internal/domain"
)

// MoveJournal records move attempts and their outcome
type MoveJournal interface {
	// Begin stores rec as pending and fills in its ID and timestamps
	Begin(ctx context.Context, rec *domain.MoveRecord) error
	Complete(ctx context.Context, id string) error
	Fail(ctx context.Context, id string, cause error) error
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.MoveRecord, error)
	Close() error
}
