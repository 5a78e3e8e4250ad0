package commands

import (
	"errors"
	"fmt"

	"forwardtask/internal/application"
)

// User-facing notices, one per move outcome
const (
	NoticeNotATask        = "Current line is not a task"
	NoticeAlreadyMoved    = "Task is already marked as moved"
	NoticeUnavailable     = "Could not get or create the target daily note"
	NoticeDisabled        = "Daily Notes core plugin is not enabled. Please enable it in Settings → Core plugins."
	NoticeSameDocument    = "You are already in the target daily note. Task not moved."
	NoticeNoActiveFile    = "No active file"
	NoticeNotDailyNote    = "Current file is not a daily note. Use 'Move to today' or 'Move to tomorrow' instead."
	noticeFailurePrefix   = "Failed to move task: "
	noticeSuccessTemplate = "✓ Task moved to %s's Daily Note"
)

// SuccessNotice is the message shown after a task reaches the note offset days away
func SuccessNotice(offset int) string {
	return fmt.Sprintf(noticeSuccessTemplate, application.TargetLabel(offset))
}

// NoticeFor maps a move error to the message shown for it
func NoticeFor(err error) string {
	var valErr *application.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, application.ErrNotATask):
		return NoticeNotATask
	case errors.Is(err, application.ErrAlreadyMoved):
		return NoticeAlreadyMoved
	case errors.Is(err, application.ErrDailyNotesDisabled):
		return NoticeDisabled
	case errors.Is(err, application.ErrDestinationUnavailable):
		return NoticeUnavailable
	case errors.Is(err, application.ErrSameDocument):
		return NoticeSameDocument
	case errors.Is(err, application.ErrNoActiveDocument):
		return NoticeNoActiveFile
	case errors.Is(err, application.ErrNotDailyNote):
		return NoticeNotDailyNote
	case errors.As(err, &valErr):
		return noticeFailurePrefix + valErr.Message
	default:
		var writeErr *application.WriteError
		if errors.As(err, &writeErr) {
			return noticeFailurePrefix + writeErr.Err.Error()
		}
		return noticeFailurePrefix + err.Error()
	}
}
