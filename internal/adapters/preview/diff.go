package preview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of change a diff line carries
type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Line is one line of a line-level diff
type Line struct {
	Op   Op
	Text string
}

// Lines computes a line-level diff between two note texts
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()

	// A trailing newline keeps the last line comparable when text is appended after it
	a, b, table := dmp.DiffLinesToChars(before+"\n", after+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		}
		for _, text := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

// Render formats the diff with "+ ", "- " and "  " prefixes, keeping at
// most context unchanged lines around each change. A negative context
// keeps everything.
func Render(before, after string, context int) string {
	lines := Lines(before, after)

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == OpEqual && context >= 0 {
			continue
		}
		lo, hi := i-context, i+context
		if context < 0 {
			lo, hi = i, i
		}
		for k := max(lo, 0); k <= hi && k < len(lines); k++ {
			keep[k] = true
		}
	}

	var b strings.Builder
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			if !skipped {
				b.WriteString("  ...\n")
				skipped = true
			}
			continue
		}
		skipped = false
		switch l.Op {
		case OpInsert:
			b.WriteString("+ ")
		case OpDelete:
			b.WriteString("- ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// Stats counts inserted and deleted lines
func Stats(before, after string) (inserted, deleted int) {
	for _, l := range Lines(before, after) {
		switch l.Op {
		case OpInsert:
			inserted++
		case OpDelete:
			deleted++
		}
	}
	return inserted, deleted
}
