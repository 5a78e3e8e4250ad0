package application

import (
	"strconv"

	"forwardtask/internal/domain"
)

// Re-export domain types for use by adapters
type (
	DocumentID        = domain.DocumentID
	TaskLine          = domain.TaskLine
	MoveRecord        = domain.MoveRecord
	MoveState         = domain.MoveState
	HistoryFilter     = domain.HistoryFilter
	DailyNoteSettings = domain.DailyNoteSettings
)

const (
	MoveStatePending   = domain.MoveStatePending
	MoveStateCompleted = domain.MoveStateCompleted
	MoveStateFailed    = domain.MoveStateFailed
)

// Insert places taskText into documentText according to the section header
func Insert(documentText, taskText, header string) string {
	return domain.Insert(documentText, taskText, header)
}

// FindNextOpenTask returns the first open task after line from
func FindNextOpenTask(lines []string, from int) (int, bool) {
	return domain.FindNextOpenTask(lines, from)
}

// TargetLabel describes a day offset the way notices phrase it
func TargetLabel(offset int) string {
	switch offset {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return "in " + strconv.Itoa(offset) + " days"
	}
}
