package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"forwardtask/internal/domain"
)

type fakeEditor struct {
	doc        domain.DocumentID
	lines      []string
	cursor     int
	replaceErr error
}

func newFakeEditor(doc domain.DocumentID, text string, cursor int) *fakeEditor {
	return &fakeEditor{doc: doc, lines: strings.Split(text, "\n"), cursor: cursor}
}

func (e *fakeEditor) Document() domain.DocumentID { return e.doc }
func (e *fakeEditor) Line(n int) string           { return e.lines[n] }
func (e *fakeEditor) LineCount() int              { return len(e.lines) }
func (e *fakeEditor) Lines() []string             { return append([]string(nil), e.lines...) }
func (e *fakeEditor) Cursor() int                 { return e.cursor }
func (e *fakeEditor) SetCursor(n int)             { e.cursor = n }
func (e *fakeEditor) Text() string                { return strings.Join(e.lines, "\n") }

func (e *fakeEditor) ReplaceLine(ctx context.Context, n int, text string) error {
	if e.replaceErr != nil {
		return e.replaceErr
	}
	e.lines[n] = text
	return nil
}

type fakeStore struct {
	docs     map[domain.DocumentID]string
	readErr  error
	writeErr error
	writes   int
}

func newFakeStore(docs map[domain.DocumentID]string) *fakeStore {
	if docs == nil {
		docs = map[domain.DocumentID]string{}
	}
	return &fakeStore{docs: docs}
}

func (s *fakeStore) Read(ctx context.Context, id domain.DocumentID) (string, error) {
	if s.readErr != nil {
		return "", s.readErr
	}
	text, ok := s.docs[id]
	if !ok {
		return "", errors.New("not found: " + string(id))
	}
	return text, nil
}

func (s *fakeStore) Write(ctx context.Context, id domain.DocumentID, text string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.docs[id] = text
	return nil
}

type fakeNotes struct {
	store      *fakeStore
	byOffset   map[int]domain.DocumentID
	dates      map[domain.DocumentID]time.Time
	resolveErr error
	resolved   []int
}

func (n *fakeNotes) Resolve(ctx context.Context, offset int) (domain.DocumentID, error) {
	n.resolved = append(n.resolved, offset)
	if n.resolveErr != nil {
		return "", n.resolveErr
	}
	id, ok := n.byOffset[offset]
	if !ok {
		return "", errors.New("no note for offset")
	}
	if _, exists := n.store.docs[id]; !exists {
		n.store.docs[id] = ""
	}
	return id, nil
}

func (n *fakeNotes) Preview(ctx context.Context, offset int) (domain.DocumentID, string, error) {
	if n.resolveErr != nil {
		return "", "", n.resolveErr
	}
	id, ok := n.byOffset[offset]
	if !ok {
		return "", "", errors.New("no note for offset")
	}
	return id, n.store.docs[id], nil
}

func (n *fakeNotes) DateOf(id domain.DocumentID) (time.Time, bool) {
	d, ok := n.dates[id]
	return d, ok
}

type fakeSettings struct {
	header  string
	saveErr error
}

func (s *fakeSettings) SectionHeader() string { return s.header }

func (s *fakeSettings) SetSectionHeader(header string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.header = header
	return nil
}

type recordingNotifier struct {
	msgs []string
}

func (r *recordingNotifier) Notify(msg string) { r.msgs = append(r.msgs, msg) }

type fakeJournal struct {
	records  []domain.MoveRecord
	beginErr error
	filter   domain.HistoryFilter
}

func (j *fakeJournal) Begin(ctx context.Context, rec *domain.MoveRecord) error {
	if j.beginErr != nil {
		return j.beginErr
	}
	rec.ID = "rec-" + string(rune('a'+len(j.records)))
	rec.State = domain.MoveStatePending
	j.records = append(j.records, *rec)
	return nil
}

func (j *fakeJournal) set(id string, state domain.MoveState, msg string) error {
	for i := range j.records {
		if j.records[i].ID == id {
			j.records[i].State = state
			j.records[i].Error = msg
			return nil
		}
	}
	return errors.New("unknown record")
}

func (j *fakeJournal) Complete(ctx context.Context, id string) error {
	return j.set(id, domain.MoveStateCompleted, "")
}

func (j *fakeJournal) Fail(ctx context.Context, id string, cause error) error {
	return j.set(id, domain.MoveStateFailed, cause.Error())
}

func (j *fakeJournal) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.MoveRecord, error) {
	j.filter = filter
	var out []domain.MoveRecord
	for _, r := range j.records {
		if filter.State == "" || r.State == filter.State {
			out = append(out, r)
		}
	}
	return out, nil
}

func (j *fakeJournal) Close() error { return nil }

// fixture wires fakes around a source note and a set of daily notes
type fixture struct {
	editor   *fakeEditor
	store    *fakeStore
	notes    *fakeNotes
	settings *fakeSettings
	notifier *recordingNotifier
	journal  *fakeJournal
}

const (
	todayID    domain.DocumentID = "Daily/2026-10-15.md"
	tomorrowID domain.DocumentID = "Daily/2026-10-16.md"
	in3DaysID  domain.DocumentID = "Daily/2026-10-18.md"
)

func newFixture(source string, cursor int, daily map[domain.DocumentID]string) *fixture {
	store := newFakeStore(daily)
	return &fixture{
		editor: newFakeEditor("Projects/Plan.md", source, cursor),
		store:  store,
		notes: &fakeNotes{
			store:    store,
			byOffset: map[int]domain.DocumentID{0: todayID, 1: tomorrowID, 3: in3DaysID},
			dates: map[domain.DocumentID]time.Time{
				todayID:    time.Date(2026, time.October, 15, 0, 0, 0, 0, time.Local),
				tomorrowID: time.Date(2026, time.October, 16, 0, 0, 0, 0, time.Local),
			},
		},
		settings: &fakeSettings{},
		notifier: &recordingNotifier{},
		journal:  &fakeJournal{},
	}
}

func (f *fixture) services() Services {
	return Services{
		Editor:   f.editor,
		Notes:    f.notes,
		Store:    f.store,
		Settings: f.settings,
		Notifier: f.notifier,
		Journal:  f.journal,
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
