package domain

import "strings"

// Lines is a document split on line feeds. No trailing-newline
// normalization is applied: "a\n" splits into ["a", ""].
type Lines []string

// SplitLines splits text into lines
func SplitLines(text string) Lines {
	return Lines(strings.Split(text, "\n"))
}

// Join rejoins the lines with line feeds
func (l Lines) Join() string {
	return strings.Join(l, "\n")
}

// Last returns the final line, or "" for an empty sequence
func (l Lines) Last() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

// InsertBefore splices text in at index i, shifting later lines down
func (l *Lines) InsertBefore(i int, text ...string) {
	s := *l
	out := make(Lines, 0, len(s)+len(text))
	out = append(out, s[:i]...)
	out = append(out, text...)
	out = append(out, s[i:]...)
	*l = out
}

// InsertAfter splices text in directly after index i
func (l *Lines) InsertAfter(i int, text ...string) {
	l.InsertBefore(i+1, text...)
}

// Append adds lines at the end
func (l *Lines) Append(text ...string) {
	*l = append(*l, text...)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// Section is the span of a configured header: the header line at Header
// and its body lines Start..End inclusive. Bounded is true when another
// heading follows the section.
type Section struct {
	Header  int
	Start   int
	End     int
	Bounded bool
}

// FindSection locates the first line whose trimmed text equals header.
// The section ends before the next line starting with '#', regardless
// of heading level, or at the end of the document.
func FindSection(lines Lines, header string) (Section, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Section{}, false
	}

	h := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == header {
			h = i
			break
		}
	}
	if h == -1 {
		return Section{}, false
	}

	sec := Section{Header: h, Start: h + 1, End: len(lines) - 1}
	for i := h + 1; i < len(lines); i++ {
		if isHeading(lines[i]) {
			sec.End = i - 1
			sec.Bounded = true
			break
		}
	}
	return sec, true
}

// LastPlaceholder returns the last placeholder line inside the section body
func (s Section) LastPlaceholder(lines Lines) (int, bool) {
	for i := s.End; i >= s.Start; i-- {
		if isBlank(lines[i]) {
			continue
		}
		if IsPlaceholder(lines[i]) {
			return i, true
		}
	}
	return -1, false
}

// LastContent returns the last non-blank body line, or the header
// index when the body is entirely blank
func (s Section) LastContent(lines Lines) int {
	for i := s.End; i >= s.Start; i-- {
		if !isBlank(lines[i]) {
			return i
		}
	}
	return s.Header
}

// InsertPolicy identifies how a task is placed into a document
type InsertPolicy int

const (
	PolicyAppend         InsertPolicy = iota // no header configured
	PolicyNewSection                         // header configured but absent
	PolicyExistingSection                    // header found in document
)

func (p InsertPolicy) String() string {
	switch p {
	case PolicyNewSection:
		return "new-section"
	case PolicyExistingSection:
		return "existing-section"
	default:
		return "append"
	}
}

// SelectPolicy reports which insertion policy applies to the document
func SelectPolicy(lines Lines, header string) InsertPolicy {
	if strings.TrimSpace(header) == "" {
		return PolicyAppend
	}
	if _, ok := FindSection(lines, header); ok {
		return PolicyExistingSection
	}
	return PolicyNewSection
}

// Insert returns documentText with taskText placed according to header.
// It is pure: identical inputs always produce identical output.
func Insert(documentText, taskText, header string) string {
	lines := SplitLines(documentText)
	header = strings.TrimSpace(header)

	switch SelectPolicy(lines, header) {
	case PolicyAppend:
		insertAtEnd(&lines, taskText)
	case PolicyNewSection:
		appendSection(&lines, header, taskText)
	case PolicyExistingSection:
		sec, _ := FindSection(lines, header)
		insertIntoSection(&lines, sec, taskText)
	}

	return lines.Join()
}

func insertAtEnd(lines *Lines, text string) {
	if len(*lines) > 0 && IsPlaceholder(lines.Last()) {
		lines.InsertBefore(len(*lines)-1, text)
		return
	}
	if len(*lines) > 0 && lines.Last() != "" {
		lines.Append("")
	}
	lines.Append(text)
}

func appendSection(lines *Lines, header, text string) {
	if len(*lines) > 0 && lines.Last() != "" {
		lines.Append("")
	}
	lines.Append(header, "", text)
}

func insertIntoSection(lines *Lines, sec Section, text string) {
	if p, ok := sec.LastPlaceholder(*lines); ok {
		lines.InsertBefore(p, text)
		return
	}

	pos := sec.LastContent(*lines) + 1
	if sec.Bounded && pos < len(*lines) && !isBlank((*lines)[pos]) {
		lines.InsertBefore(pos, text, "")
		return
	}
	lines.InsertBefore(pos, text)
}
