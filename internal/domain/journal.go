package domain

import "time"

// MoveState is the lifecycle of a journaled move
type MoveState string

const (
	// Destination not yet written, or written but the source line not yet marked
	MoveStatePending   MoveState = "pending"
	MoveStateCompleted MoveState = "completed"
	MoveStateFailed    MoveState = "failed"
)

// MoveRecord is one entry in the move journal
type MoveRecord struct {
	ID          string
	Source      DocumentID
	SourceLine  int // 0-based
	Destination DocumentID
	Offset      int
	TaskText    string
	State       MoveState
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HistoryFilter narrows journal listings
type HistoryFilter struct {
	State MoveState // empty for all states
	Limit int       // 0 for no limit
}
