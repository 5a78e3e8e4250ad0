package commands

import (
	"context"
	"time"

	"forwardtask/internal/application"
	"forwardtask/internal/domain"
)

var timeNow = time.Now

// MoveTaskRelativeCommand moves the task under the cursor to the day after
// the daily note it currently sits in
type MoveTaskRelativeCommand struct {
	svc    Services
	DryRun bool
}

// NewMoveTaskRelativeCommand creates a new MoveTaskRelativeCommand
func NewMoveTaskRelativeCommand(svc Services) *MoveTaskRelativeCommand {
	return &MoveTaskRelativeCommand{svc: svc}
}

// Offset returns the day offset from today of the note following the active one
func (c *MoveTaskRelativeCommand) Offset() (int, error) {
	if c.svc.Editor == nil || c.svc.Editor.Document() == "" {
		return 0, application.ErrNoActiveDocument
	}
	if c.svc.Notes == nil {
		return 0, application.ErrNotDailyNote
	}

	date, ok := c.svc.Notes.DateOf(c.svc.Editor.Document())
	if !ok {
		return 0, application.ErrNotDailyNote
	}

	return domain.DaysBetween(timeNow(), date.AddDate(0, 0, 1)), nil
}

// Execute resolves the offset and delegates to MoveTaskCommand
func (c *MoveTaskRelativeCommand) Execute(ctx context.Context) (*MoveTaskResult, error) {
	offset, err := c.Offset()
	if err != nil {
		c.svc.notify(NoticeFor(err))
		return nil, err
	}

	move := NewMoveTaskCommand(c.svc, offset)
	move.DryRun = c.DryRun
	return move.Execute(ctx)
}
