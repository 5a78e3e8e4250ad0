package commands

import (
	"context"
	"errors"
	"testing"

	"forwardtask/internal/application"
	"forwardtask/internal/domain"
)

const planNote = "# Plan\n- [ ] Buy milk\nsome prose\n  * [x] Done thing\n- [>] Old task\n- [ ] Call mom"

func TestMoveTaskCommand_Success(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		offset     int
		header     string
		daily      string
		wantDaily  string
		wantSource string
		wantCursor int
		wantNotice string
	}{
		{
			name:       "open task to today before placeholder",
			cursor:     1,
			offset:     0,
			daily:      "# Today\n- [ ]",
			wantDaily:  "# Today\n- [ ] Buy milk\n- [ ]",
			wantSource: "- [>] Buy milk",
			wantCursor: 5,
			wantNotice: "✓ Task moved to today's Daily Note",
		},
		{
			name:       "other status is movable and normalized",
			cursor:     3,
			offset:     1,
			daily:      "",
			wantDaily:  "\n- [ ] Done thing",
			wantSource: "  * [>] Done thing",
			wantCursor: 5,
			wantNotice: "✓ Task moved to tomorrow's Daily Note",
		},
		{
			name:       "into existing section",
			cursor:     5,
			offset:     3,
			header:     "## Tasks",
			daily:      "# Day\n\n## Tasks\n- [ ] a\n\n## Notes\nx",
			wantDaily:  "# Day\n\n## Tasks\n- [ ] a\n- [ ] Call mom\n\n## Notes\nx",
			wantSource: "- [>] Call mom",
			wantCursor: 5,
			wantNotice: "✓ Task moved to in 3 days's Daily Note",
		},
		{
			name:       "new section appended",
			cursor:     1,
			offset:     0,
			header:     "## Tasks",
			daily:      "# Today",
			wantDaily:  "# Today\n\n## Tasks\n\n- [ ] Buy milk",
			wantSource: "- [>] Buy milk",
			wantCursor: 5,
			wantNotice: "✓ Task moved to today's Daily Note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daily := map[domain.DocumentID]string{todayID: tt.daily, tomorrowID: tt.daily, in3DaysID: tt.daily}
			f := newFixture(planNote, tt.cursor, daily)
			f.settings.header = tt.header

			res, err := NewMoveTaskCommand(f.services(), tt.offset).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			dest := f.notes.byOffset[tt.offset]
			if res.Destination != dest {
				t.Errorf("destination = %q, want %q", res.Destination, dest)
			}
			if got := f.store.docs[dest]; got != tt.wantDaily {
				t.Errorf("daily note = %q, want %q", got, tt.wantDaily)
			}
			if got := f.editor.lines[tt.cursor]; got != tt.wantSource {
				t.Errorf("source line = %q, want %q", got, tt.wantSource)
			}
			if f.editor.cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", f.editor.cursor, tt.wantCursor)
			}
			if len(f.notifier.msgs) != 1 || f.notifier.msgs[0] != tt.wantNotice {
				t.Errorf("notices = %q, want [%q]", f.notifier.msgs, tt.wantNotice)
			}
			if res.Message != tt.wantNotice {
				t.Errorf("message = %q, want %q", res.Message, tt.wantNotice)
			}
			if len(f.journal.records) != 1 || f.journal.records[0].State != domain.MoveStateCompleted {
				t.Errorf("journal = %+v, want one completed record", f.journal.records)
			}
		})
	}
}

func TestMoveTaskCommand_NoNextOpenTask(t *testing.T) {
	f := newFixture("- [ ] Only\n- [x] done\n- [>] moved", 0, map[domain.DocumentID]string{todayID: ""})

	res, err := NewMoveTaskCommand(f.services(), 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.editor.cursor != 0 {
		t.Errorf("cursor moved to %d, want 0", f.editor.cursor)
	}
	if res.NextCursor != -1 {
		t.Errorf("NextCursor = %d, want -1", res.NextCursor)
	}
}

func TestMoveTaskCommand_Aborts(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		cursor     int
		setup      func(f *fixture)
		wantErr    error
		wantNotice string
	}{
		{
			name:       "not a task",
			source:     "Just text",
			wantErr:    application.ErrNotATask,
			wantNotice: NoticeNotATask,
		},
		{
			name:       "checkbox without content is not a task",
			source:     "- [ ]",
			wantErr:    application.ErrNotATask,
			wantNotice: NoticeNotATask,
		},
		{
			name:       "already moved",
			source:     "- [>] Buy milk",
			wantErr:    application.ErrAlreadyMoved,
			wantNotice: NoticeAlreadyMoved,
		},
		{
			name:   "destination unavailable",
			source: "- [ ] Buy milk",
			setup: func(f *fixture) {
				f.notes.resolveErr = errors.New("permission denied")
			},
			wantErr:    application.ErrDestinationUnavailable,
			wantNotice: NoticeUnavailable,
		},
		{
			name:   "daily notes disabled",
			source: "- [ ] Buy milk",
			setup: func(f *fixture) {
				f.notes.resolveErr = application.ErrDailyNotesDisabled
			},
			wantErr:    application.ErrDestinationUnavailable,
			wantNotice: NoticeDisabled,
		},
		{
			name:   "same document",
			source: "- [ ] Buy milk",
			setup: func(f *fixture) {
				f.editor.doc = todayID
			},
			wantErr:    application.ErrSameDocument,
			wantNotice: NoticeSameDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.source, tt.cursor, map[domain.DocumentID]string{todayID: "# Today"})
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := NewMoveTaskCommand(f.services(), 0).Execute(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(f.notifier.msgs) != 1 || f.notifier.msgs[0] != tt.wantNotice {
				t.Errorf("notices = %q, want [%q]", f.notifier.msgs, tt.wantNotice)
			}
			if f.store.docs[todayID] != "# Today" {
				t.Errorf("daily note modified: %q", f.store.docs[todayID])
			}
			if f.editor.Text() != tt.source {
				t.Errorf("source modified: %q", f.editor.Text())
			}
			if f.store.writes != 0 {
				t.Errorf("store writes = %d, want 0", f.store.writes)
			}
			if len(f.journal.records) != 0 {
				t.Errorf("journal records = %d, want 0", len(f.journal.records))
			}
		})
	}
}

func TestMoveTaskCommand_NotATaskSkipsResolve(t *testing.T) {
	f := newFixture("plain", 0, nil)

	_, _ = NewMoveTaskCommand(f.services(), 0).Execute(context.Background())
	if len(f.notes.resolved) != 0 {
		t.Errorf("resolver called %d times, want 0", len(f.notes.resolved))
	}
}

func TestMoveTaskCommand_DestinationWriteFailure(t *testing.T) {
	f := newFixture("- [ ] Buy milk", 0, map[domain.DocumentID]string{todayID: "# Today"})
	f.store.writeErr = errors.New("disk full")

	_, err := NewMoveTaskCommand(f.services(), 0).Execute(context.Background())
	if !errors.Is(err, application.ErrWriteFailure) {
		t.Fatalf("error = %v, want write failure", err)
	}
	if want := "Failed to move task: disk full"; len(f.notifier.msgs) != 1 || f.notifier.msgs[0] != want {
		t.Errorf("notices = %q, want [%q]", f.notifier.msgs, want)
	}
	if f.editor.Text() != "- [ ] Buy milk" {
		t.Errorf("source modified: %q", f.editor.Text())
	}
	if len(f.journal.records) != 1 || f.journal.records[0].State != domain.MoveStateFailed {
		t.Fatalf("journal = %+v, want one failed record", f.journal.records)
	}
	if !contains(f.journal.records[0].Error, "disk full") {
		t.Errorf("journal error = %q", f.journal.records[0].Error)
	}
}

func TestMoveTaskCommand_SourceRewriteFailure(t *testing.T) {
	f := newFixture("- [ ] Buy milk", 0, map[domain.DocumentID]string{todayID: "# Today"})
	f.editor.replaceErr = errors.New("read-only file")

	_, err := NewMoveTaskCommand(f.services(), 0).Execute(context.Background())
	if !errors.Is(err, application.ErrWriteFailure) {
		t.Fatalf("error = %v, want write failure", err)
	}

	// The destination keeps the inserted task; nothing is rolled back.
	if got := f.store.docs[todayID]; got != "# Today\n\n- [ ] Buy milk" {
		t.Errorf("daily note = %q", got)
	}
	if f.editor.Text() != "- [ ] Buy milk" {
		t.Errorf("source modified: %q", f.editor.Text())
	}
	if want := "Failed to move task: read-only file"; len(f.notifier.msgs) != 1 || f.notifier.msgs[0] != want {
		t.Errorf("notices = %q, want [%q]", f.notifier.msgs, want)
	}
	if f.journal.records[0].State != domain.MoveStateFailed {
		t.Errorf("journal state = %s, want failed", f.journal.records[0].State)
	}
}

func TestMoveTaskCommand_JournalErrorDoesNotAbort(t *testing.T) {
	f := newFixture("- [ ] Buy milk", 0, map[domain.DocumentID]string{todayID: ""})
	f.journal.beginErr = errors.New("database locked")

	if _, err := NewMoveTaskCommand(f.services(), 0).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.editor.lines[0] != "- [>] Buy milk" {
		t.Errorf("source line = %q", f.editor.lines[0])
	}
}

func TestMoveTaskCommand_WithoutJournal(t *testing.T) {
	f := newFixture("- [ ] Buy milk", 0, map[domain.DocumentID]string{todayID: ""})
	svc := f.services()
	svc.Journal = nil

	if _, err := NewMoveTaskCommand(svc, 0).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMoveTaskCommand_DryRun(t *testing.T) {
	f := newFixture(planNote, 1, map[domain.DocumentID]string{todayID: "# Today\n- [ ]"})

	cmd := NewMoveTaskCommand(f.services(), 0)
	cmd.DryRun = true
	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.After != "# Today\n- [ ] Buy milk\n- [ ]" {
		t.Errorf("After = %q", res.After)
	}
	if res.Policy != domain.PolicyAppend {
		t.Errorf("Policy = %s, want append", res.Policy)
	}
	if res.NextCursor != 5 {
		t.Errorf("NextCursor = %d, want 5", res.NextCursor)
	}
	if f.store.writes != 0 || f.store.docs[todayID] != "# Today\n- [ ]" {
		t.Error("dry run wrote the daily note")
	}
	if f.editor.Text() != planNote || f.editor.cursor != 1 {
		t.Error("dry run modified the editor")
	}
	if len(f.notifier.msgs) != 1 || !contains(f.notifier.msgs[0], "Dry run") {
		t.Errorf("notices = %q", f.notifier.msgs)
	}
}

func TestMoveTaskCommand_Validate(t *testing.T) {
	f := newFixture("- [ ] a", 4, nil)

	err := NewMoveTaskCommand(f.services(), 0).Validate()
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	svc := f.services()
	svc.Editor = nil
	if err := NewMoveTaskCommand(svc, 0).Validate(); !errors.Is(err, application.ErrNoActiveDocument) {
		t.Errorf("error = %v, want ErrNoActiveDocument", err)
	}
}

func TestNoticeFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{application.ErrNotATask, NoticeNotATask},
		{application.ErrAlreadyMoved, NoticeAlreadyMoved},
		{application.ErrDailyNotesDisabled, NoticeDisabled},
		{application.ErrDestinationUnavailable, NoticeUnavailable},
		{application.ErrSameDocument, NoticeSameDocument},
		{application.ErrNoActiveDocument, NoticeNoActiveFile},
		{application.ErrNotDailyNote, NoticeNotDailyNote},
		{&application.WriteError{Op: "write destination", Err: errors.New("boom")}, "Failed to move task: boom"},
		{errors.New("odd"), "Failed to move task: odd"},
	}

	for _, tt := range tests {
		if got := NoticeFor(tt.err); got != tt.want {
			t.Errorf("NoticeFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
