package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrAlreadyMoved is returned when a task line already carries the moved status
var ErrAlreadyMoved = errors.New("task is already marked as moved")

var (
	// <indent><bullet> [<status>] <content>
	taskPattern = regexp.MustCompile(`^(\s*)([-*])\s+\[(.)\]\s+(.*)$`)

	// Open task with non-empty content; a bare "- [ ]" placeholder never matches
	openTaskPattern = regexp.MustCompile(`^\s*[-*]\s+\[\s\]\s+.+`)
)

// StatusKind classifies the character inside a task checkbox
type StatusKind int

const (
	StatusOther StatusKind = iota // x, -, ?, or any custom marker
	StatusOpen                    // [ ]
	StatusMoved                   // [>]
)

func (k StatusKind) String() string {
	switch k {
	case StatusOpen:
		return "open"
	case StatusMoved:
		return "moved"
	default:
		return "other"
	}
}

// Status is the single character inside a task checkbox
type Status rune

const (
	StatusCharOpen  Status = ' '
	StatusCharMoved Status = '>'
)

// Kind returns the classification of the status character
func (s Status) Kind() StatusKind {
	switch s {
	case StatusCharOpen:
		return StatusOpen
	case StatusCharMoved:
		return StatusMoved
	default:
		return StatusOther
	}
}

func (s Status) String() string {
	return string(rune(s))
}

// TaskLine is a checklist line split into its parts.
// Indent and Bullet are kept verbatim so the line can be rewritten in place.
type TaskLine struct {
	Indent  string
	Bullet  string
	Status  Status
	Content string
}

// Recognize parses a line as a task. The second return value is false
// when the line does not have the task shape.
func Recognize(line string) (TaskLine, bool) {
	m := taskPattern.FindStringSubmatch(line)
	if m == nil {
		return TaskLine{}, false
	}
	status := []rune(m[3])
	return TaskLine{
		Indent:  m[1],
		Bullet:  m[2],
		Status:  Status(status[0]),
		Content: m[4],
	}, true
}

// String reconstructs the line with single spaces around the checkbox
func (t TaskLine) String() string {
	var b strings.Builder
	b.WriteString(t.Indent)
	b.WriteString(t.Bullet)
	b.WriteString(" [")
	b.WriteRune(rune(t.Status))
	b.WriteString("] ")
	b.WriteString(t.Content)
	return b.String()
}

// IsMoved reports whether the task has already been forwarded
func (t TaskLine) IsMoved() bool {
	return t.Status.Kind() == StatusMoved
}

// MarkMoved returns the task in its terminal moved state.
// A task that is already moved cannot transition again.
func (t TaskLine) MarkMoved() (TaskLine, error) {
	if t.IsMoved() {
		return t, ErrAlreadyMoved
	}
	t.Status = StatusCharMoved
	return t, nil
}

// PlainTask returns the canonical open task text for content
func PlainTask(content string) string {
	return "- [ ] " + content
}

// ToPlainTask returns the text inserted into the destination note.
// Bullet, status and indentation of the source are dropped.
func ToPlainTask(t TaskLine) string {
	return PlainTask(t.Content)
}

// ToMovedMarker returns the source line rewritten with the [>] status
func ToMovedMarker(t TaskLine) string {
	return t.Indent + t.Bullet + " [>] " + t.Content
}

// IsOpenTask reports whether line is an open task with content
func IsOpenTask(line string) bool {
	return openTaskPattern.MatchString(line)
}

// IsPlaceholder reports whether line is an empty task left as an insertion cursor
func IsPlaceholder(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "- [ ]" || trimmed == "* [ ]"
}

// FindNextOpenTask returns the index of the first open task after from
func FindNextOpenTask(lines []string, from int) (int, bool) {
	start := from + 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		if IsOpenTask(lines[i]) {
			return i, true
		}
	}
	return -1, false
}
