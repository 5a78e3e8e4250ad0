package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"forwardtask/internal/application"
	"forwardtask/internal/domain"
	"forwardtask/internal/ports"
)

// Services bundles the collaborators a move works against
type Services struct {
	Editor   ports.Editor
	Notes    ports.DailyNotes
	Store    ports.DocumentStore
	Settings ports.SettingsStore
	Notifier ports.Notifier
	Journal  ports.MoveJournal // optional
	Logger   *zap.Logger       // optional
}

func (s Services) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s Services) notify(msg string) {
	if s.Notifier != nil {
		s.Notifier.Notify(msg)
	}
}

func (s Services) sectionHeader() string {
	if s.Settings == nil {
		return ""
	}
	return s.Settings.SectionHeader()
}

// MoveTaskResult contains the result of moving a task
type MoveTaskResult struct {
	Source      application.DocumentID
	SourceLine  int
	Destination application.DocumentID
	TaskText    string
	Policy      domain.InsertPolicy
	NextCursor  int // -1 when no open task follows
	DryRun      bool
	Before      string // destination text before the insert
	After       string // destination text after the insert
	Message     string
}

// MoveTaskCommand moves the task under the cursor into the daily note Offset days from today
type MoveTaskCommand struct {
	svc    Services
	Offset int
	DryRun bool
}

// NewMoveTaskCommand creates a new MoveTaskCommand
func NewMoveTaskCommand(svc Services, offset int) *MoveTaskCommand {
	return &MoveTaskCommand{
		svc:    svc,
		Offset: offset,
	}
}

// Validate checks that there is a line under the cursor to move
func (c *MoveTaskCommand) Validate() error {
	if c.svc.Editor == nil {
		return application.ErrNoActiveDocument
	}
	if c.svc.Notes == nil || c.svc.Store == nil {
		return fmt.Errorf("%w: no daily notes configured", application.ErrDestinationUnavailable)
	}
	return application.ValidateLine(c.svc.Editor.Cursor(), c.svc.Editor.LineCount())
}

// Execute runs the move. Every call notifies exactly once, success or not.
func (c *MoveTaskCommand) Execute(ctx context.Context) (*MoveTaskResult, error) {
	res, err := c.execute(ctx)
	if err != nil {
		c.svc.notify(NoticeFor(err))
		return nil, err
	}
	c.svc.notify(res.Message)
	return res, nil
}

func (c *MoveTaskCommand) execute(ctx context.Context) (*MoveTaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ed := c.svc.Editor
	cursor := ed.Cursor()

	task, ok := domain.Recognize(ed.Line(cursor))
	if !ok {
		return nil, application.ErrNotATask
	}
	if task.IsMoved() {
		return nil, application.ErrAlreadyMoved
	}

	res := &MoveTaskResult{
		Source:     ed.Document(),
		SourceLine: cursor,
		TaskText:   domain.ToPlainTask(task),
		NextCursor: -1,
		DryRun:     c.DryRun,
	}
	header := c.svc.sectionHeader()

	if c.DryRun {
		return c.preview(ctx, res, header)
	}

	dest, err := c.svc.Notes.Resolve(ctx, c.Offset)
	if err != nil {
		return nil, destinationError(err)
	}
	if dest == res.Source {
		return nil, application.ErrSameDocument
	}
	res.Destination = dest

	rec := &domain.MoveRecord{
		Source:      res.Source,
		SourceLine:  cursor,
		Destination: dest,
		Offset:      c.Offset,
		TaskText:    res.TaskText,
	}
	c.begin(ctx, rec)

	if err := c.transfer(ctx, res, task, header); err != nil {
		c.svc.logger().Error("move failed",
			zap.String("source", string(res.Source)),
			zap.String("destination", string(dest)),
			zap.Error(err),
		)
		c.fail(ctx, rec, err)
		return nil, err
	}
	c.complete(ctx, rec)

	if next, ok := domain.FindNextOpenTask(ed.Lines(), cursor); ok {
		ed.SetCursor(next)
		res.NextCursor = next
	}

	res.Message = SuccessNotice(c.Offset)
	return res, nil
}

// transfer writes the destination note, then marks the source line moved.
// A failure after the first write leaves the task in both notes.
func (c *MoveTaskCommand) transfer(ctx context.Context, res *MoveTaskResult, task domain.TaskLine, header string) error {
	before, err := c.svc.Store.Read(ctx, res.Destination)
	if err != nil {
		return &application.WriteError{Op: "read destination", Err: err}
	}

	res.Before = before
	res.Policy = domain.SelectPolicy(domain.SplitLines(before), header)
	res.After = domain.Insert(before, res.TaskText, header)

	if err := c.svc.Store.Write(ctx, res.Destination, res.After); err != nil {
		return &application.WriteError{Op: "write destination", Err: err}
	}

	if err := c.svc.Editor.ReplaceLine(ctx, res.SourceLine, domain.ToMovedMarker(task)); err != nil {
		return &application.WriteError{Op: "mark source line", Err: err}
	}

	c.svc.logger().Debug("task moved",
		zap.String("source", string(res.Source)),
		zap.Int("line", res.SourceLine),
		zap.String("destination", string(res.Destination)),
		zap.Stringer("policy", res.Policy),
	)
	return nil
}

func (c *MoveTaskCommand) preview(ctx context.Context, res *MoveTaskResult, header string) (*MoveTaskResult, error) {
	dest, before, err := c.svc.Notes.Preview(ctx, c.Offset)
	if err != nil {
		return nil, destinationError(err)
	}
	if dest == res.Source {
		return nil, application.ErrSameDocument
	}

	res.Destination = dest
	res.Before = before
	res.Policy = domain.SelectPolicy(domain.SplitLines(before), header)
	res.After = domain.Insert(before, res.TaskText, header)
	if next, ok := domain.FindNextOpenTask(c.svc.Editor.Lines(), res.SourceLine); ok {
		res.NextCursor = next
	}
	res.Message = fmt.Sprintf("Dry run: task would move to %s's Daily Note (%s)", application.TargetLabel(c.Offset), dest)
	return res, nil
}

func destinationError(err error) error {
	if errors.Is(err, application.ErrDestinationUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", application.ErrDestinationUnavailable, err)
}

// Journal failures never change the outcome of a move.

func (c *MoveTaskCommand) begin(ctx context.Context, rec *domain.MoveRecord) {
	if c.svc.Journal == nil {
		return
	}
	if err := c.svc.Journal.Begin(ctx, rec); err != nil {
		c.svc.logger().Warn("journal begin failed", zap.Error(err))
	}
}

func (c *MoveTaskCommand) complete(ctx context.Context, rec *domain.MoveRecord) {
	if c.svc.Journal == nil || rec.ID == "" {
		return
	}
	if err := c.svc.Journal.Complete(ctx, rec.ID); err != nil {
		c.svc.logger().Warn("journal complete failed", zap.String("id", rec.ID), zap.Error(err))
	}
}

func (c *MoveTaskCommand) fail(ctx context.Context, rec *domain.MoveRecord, cause error) {
	if c.svc.Journal == nil || rec.ID == "" {
		return
	}
	if err := c.svc.Journal.Fail(ctx, rec.ID, cause); err != nil {
		c.svc.logger().Warn("journal fail failed", zap.String("id", rec.ID), zap.Error(err))
	}
}
