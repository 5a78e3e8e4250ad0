package commands

import (
	"context"
	"fmt"
	"strings"

	"forwardtask/internal/application"
	"forwardtask/internal/domain"
)

// AddTaskResult contains the result of capturing a task
type AddTaskResult struct {
	Destination application.DocumentID
	TaskText    string
	Policy      domain.InsertPolicy
	Message     string
}

// AddTaskCommand inserts a new open task into the daily note Offset days from today
type AddTaskCommand struct {
	svc    Services
	Text   string
	Offset int
}

// NewAddTaskCommand creates a new AddTaskCommand
func NewAddTaskCommand(svc Services, text string, offset int) *AddTaskCommand {
	return &AddTaskCommand{
		svc:    svc,
		Text:   text,
		Offset: offset,
	}
}

// Validate checks the task text
func (c *AddTaskCommand) Validate() error {
	if err := application.ValidateRequired("taskText", c.Text); err != nil {
		return err
	}
	if strings.ContainsAny(c.Text, "\r\n") {
		return &application.ValidationError{
			Field:   "taskText",
			Message: "task text must be a single line",
		}
	}
	if c.svc.Notes == nil || c.svc.Store == nil {
		return fmt.Errorf("%w: no daily notes configured", application.ErrDestinationUnavailable)
	}
	return nil
}

// TaskText is the line that will be inserted. Text that is already a task
// keeps its content and is reopened.
func (c *AddTaskCommand) TaskText() string {
	text := strings.TrimSpace(c.Text)
	if task, ok := domain.Recognize(text); ok {
		return domain.ToPlainTask(task)
	}
	return domain.PlainTask(text)
}

// Execute runs the add task command
func (c *AddTaskCommand) Execute(ctx context.Context) (*AddTaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dest, err := c.svc.Notes.Resolve(ctx, c.Offset)
	if err != nil {
		return nil, destinationError(err)
	}

	before, err := c.svc.Store.Read(ctx, dest)
	if err != nil {
		return nil, &application.WriteError{Op: "read destination", Err: err}
	}

	header := c.svc.sectionHeader()
	taskText := c.TaskText()
	if err := c.svc.Store.Write(ctx, dest, domain.Insert(before, taskText, header)); err != nil {
		return nil, &application.WriteError{Op: "write destination", Err: err}
	}

	return &AddTaskResult{
		Destination: dest,
		TaskText:    taskText,
		Policy:      domain.SelectPolicy(domain.SplitLines(before), header),
		Message:     fmt.Sprintf("✓ Task added to %s's Daily Note", application.TargetLabel(c.Offset)),
	}, nil
}
