package application

import (
	"errors"
	"fmt"

	"forwardtask/internal/domain"
)

// Sentinel errors for the conditions that abort a move
var (
	ErrNotATask               = errors.New("current line is not a task")
	ErrAlreadyMoved           = domain.ErrAlreadyMoved
	ErrDestinationUnavailable = errors.New("could not get or create the target daily note")
	ErrDailyNotesDisabled     = fmt.Errorf("%w: daily notes core plugin is not enabled", ErrDestinationUnavailable)
	ErrSameDocument           = errors.New("already in the target daily note")
	ErrNoActiveDocument       = errors.New("no active file")
	ErrNotDailyNote           = errors.New("current file is not a daily note")
	ErrWriteFailure           = errors.New("write failure")
	ErrJournalDisabled        = errors.New("move journal is disabled")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// WriteError wraps an unexpected failure while updating the destination
// note or rewriting the source line
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}
