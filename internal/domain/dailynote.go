package domain

import (
	"math"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is the daily-note filename format used by Obsidian
// when none is configured
const DefaultDateFormat = "YYYY-MM-DD"

// DocumentID identifies a note by its slash-separated path relative to the vault root
type DocumentID string

func (d DocumentID) String() string {
	return string(d)
}

// Base returns the filename without its .md extension
func (d DocumentID) Base() string {
	return strings.TrimSuffix(path.Base(string(d)), ".md")
}

// DailyNoteSettings mirrors the Daily Notes core plugin options
type DailyNoteSettings struct {
	Folder   string
	Format   string
	Template string
}

// DailyNoteID returns the document holding the daily note for date
func (s DailyNoteSettings) DailyNoteID(date time.Time) DocumentID {
	name := NewDateFormat(s.Format).Format(date) + ".md"
	folder := strings.Trim(s.Folder, "/")
	if folder == "" {
		return DocumentID(path.Clean(name))
	}
	return DocumentID(path.Join(folder, name))
}

// DateOf returns the date of a daily note, or false when id is not one
func (s DailyNoteSettings) DateOf(id DocumentID) (time.Time, bool) {
	p := path.Clean(string(id))
	if !strings.HasSuffix(p, ".md") {
		return time.Time{}, false
	}
	folder := strings.Trim(s.Folder, "/")
	if folder != "" && !strings.HasPrefix(p, folder+"/") {
		return time.Time{}, false
	}

	// Only the last segment of a nested format ("YYYY/MM/YYYY-MM-DD") names the file
	format := s.Format
	if format == "" {
		format = DefaultDateFormat
	}
	if i := strings.LastIndex(format, "/"); i >= 0 {
		format = format[i+1:]
	}
	return NewDateFormat(format).Parse(id.Base())
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	a = StartOfDay(a)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, a.Location())
	// Round to absorb DST shifts
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// DateFormat is a moment.js style date pattern (YYYY, MM, DD, ...)
type DateFormat struct {
	tokens []dateToken
}

type dateToken struct {
	kind    string // one of the moment tokens, or "" for literal text
	literal string
}

// Longest tokens first so "YYYY" wins over "YY"
var momentTokens = []string{"YYYY", "YY", "MMMM", "MMM", "MM", "M", "dddd", "ddd", "Do", "DD", "D", "HH", "mm", "ss"}

// NewDateFormat tokenizes a moment-style pattern. Text in [brackets] is literal.
func NewDateFormat(pattern string) DateFormat {
	if pattern == "" {
		pattern = DefaultDateFormat
	}

	var tokens []dateToken
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, dateToken{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i:], ']'); end > 0 {
				lit.WriteString(pattern[i+1 : i+end])
				i += end + 1
				continue
			}
		}
		matched := false
		for _, tok := range momentTokens {
			if strings.HasPrefix(pattern[i:], tok) {
				flush()
				tokens = append(tokens, dateToken{kind: tok})
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(pattern[i])
			i++
		}
	}
	flush()

	return DateFormat{tokens: tokens}
}

// Format renders t using the pattern
func (f DateFormat) Format(t time.Time) string {
	var b strings.Builder
	for _, tok := range f.tokens {
		switch tok.kind {
		case "":
			b.WriteString(tok.literal)
		case "YYYY":
			b.WriteString(t.Format("2006"))
		case "YY":
			b.WriteString(t.Format("06"))
		case "MMMM":
			b.WriteString(t.Month().String())
		case "MMM":
			b.WriteString(t.Month().String()[:3])
		case "MM":
			b.WriteString(t.Format("01"))
		case "M":
			b.WriteString(strconv.Itoa(int(t.Month())))
		case "dddd":
			b.WriteString(t.Weekday().String())
		case "ddd":
			b.WriteString(t.Weekday().String()[:3])
		case "DD":
			b.WriteString(t.Format("02"))
		case "Do":
			b.WriteString(strconv.Itoa(t.Day()) + ordinalSuffix(t.Day()))
		case "D":
			b.WriteString(strconv.Itoa(t.Day()))
		case "HH":
			b.WriteString(t.Format("15"))
		case "mm":
			b.WriteString(t.Format("04"))
		case "ss":
			b.WriteString(t.Format("05"))
		}
	}
	return b.String()
}

var tokenExpr = map[string]string{
	"YYYY": `(\d{4})`,
	"YY":   `(\d{2})`,
	"MMMM": `(January|February|March|April|May|June|July|August|September|October|November|December)`,
	"MMM":  `(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`,
	"MM":   `(\d{2})`,
	"M":    `(\d{1,2})`,
	"dddd": `(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`,
	"ddd":  `(Mon|Tue|Wed|Thu|Fri|Sat|Sun)`,
	"Do":   `(\d{1,2}(?:st|nd|rd|th))`,
	"DD":   `(\d{2})`,
	"D":    `(\d{1,2})`,
	"HH":   `(\d{2})`,
	"mm":   `(\d{2})`,
	"ss":   `(\d{2})`,
}

// Parse reads a date from s strictly against the pattern. Day, month and
// year must all be present and form a real calendar date.
func (f DateFormat) Parse(s string) (time.Time, bool) {
	var expr strings.Builder
	expr.WriteString("^")
	for _, tok := range f.tokens {
		if tok.kind == "" {
			expr.WriteString(regexp.QuoteMeta(tok.literal))
			continue
		}
		expr.WriteString(tokenExpr[tok.kind])
	}
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return time.Time{}, false
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year, month, day := -1, -1, -1
	group := 1
	for _, tok := range f.tokens {
		if tok.kind == "" {
			continue
		}
		v := m[group]
		group++
		switch tok.kind {
		case "YYYY":
			year, _ = strconv.Atoi(v)
		case "YY":
			n, _ := strconv.Atoi(v)
			year = 2000 + n
		case "MMMM", "MMM":
			month = monthIndex(v)
		case "MM", "M":
			month, _ = strconv.Atoi(v)
		case "DD", "D":
			day, _ = strconv.Atoi(v)
		case "Do":
			n, _ := strconv.Atoi(v[:len(v)-2])
			if ordinalSuffix(n) == v[len(v)-2:] {
				day = n
			}
		}
	}
	if year < 0 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// ordinalSuffix returns the English suffix for day: st, nd, rd or th
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func monthIndex(name string) int {
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(m.String(), name) {
			return int(m)
		}
	}
	return -1
}

var templateVar = regexp.MustCompile(`\{\{\s*(date|time|title)\s*(?::([^}]*))?\}\}`)

// ExpandTemplate substitutes {{date}}, {{date:FORMAT}}, {{time}} and
// {{title}} in a daily-note template
func ExpandTemplate(tmpl string, settings DailyNoteSettings, date, now time.Time) string {
	title := settings.DailyNoteID(date).Base()
	return templateVar.ReplaceAllStringFunc(tmpl, func(match string) string {
		m := templateVar.FindStringSubmatch(match)
		name, format := m[1], strings.TrimSpace(m[2])
		switch name {
		case "title":
			return title
		case "time":
			if format == "" {
				format = "HH:mm"
			}
			return NewDateFormat(format).Format(now)
		default:
			if format == "" {
				format = settings.Format
			}
			return NewDateFormat(format).Format(date)
		}
	})
}
