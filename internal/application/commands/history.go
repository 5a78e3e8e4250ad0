package commands

import (
	"context"
	"fmt"

	"forwardtask/internal/application"
	"forwardtask/internal/ports"
)

// HistoryResult contains journaled moves, newest first
type HistoryResult struct {
	Records []application.MoveRecord
	Message string
}

// HistoryCommand lists entries from the move journal
type HistoryCommand struct {
	journal ports.MoveJournal
	Filter  application.HistoryFilter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(journal ports.MoveJournal, filter application.HistoryFilter) *HistoryCommand {
	return &HistoryCommand{
		journal: journal,
		Filter:  filter,
	}
}

// Validate checks the filter
func (c *HistoryCommand) Validate() error {
	if c.journal == nil {
		return application.ErrJournalDisabled
	}
	if c.Filter.Limit < 0 {
		return &application.ValidationError{Field: "limit", Message: "limit must not be negative"}
	}
	switch c.Filter.State {
	case "", application.MoveStatePending, application.MoveStateCompleted, application.MoveStateFailed:
		return nil
	default:
		return &application.ValidationError{
			Field:   "state",
			Message: fmt.Sprintf("unknown move state %q", c.Filter.State),
		}
	}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	records, err := c.journal.List(ctx, c.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return &HistoryResult{
		Records: records,
		Message: fmt.Sprintf("%d move(s)", len(records)),
	}, nil
}
