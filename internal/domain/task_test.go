package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRecognize(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
		want   TaskLine
	}{
		{
			name:   "open dash task",
			line:   "- [ ] Buy milk",
			wantOK: true,
			want:   TaskLine{Indent: "", Bullet: "-", Status: ' ', Content: "Buy milk"},
		},
		{
			name:   "star bullet done task",
			line:   "* [x] Call mom",
			wantOK: true,
			want:   TaskLine{Indent: "", Bullet: "*", Status: 'x', Content: "Call mom"},
		},
		{
			name:   "indented with tab",
			line:   "\t- [ ] nested",
			wantOK: true,
			want:   TaskLine{Indent: "\t", Bullet: "-", Status: ' ', Content: "nested"},
		},
		{
			name:   "moved task",
			line:   "  - [>] already gone",
			wantOK: true,
			want:   TaskLine{Indent: "  ", Bullet: "-", Status: '>', Content: "already gone"},
		},
		{
			name:   "content with markdown link",
			line:   "- [ ] read [[Project X]] and [docs](https://example.com)",
			wantOK: true,
			want:   TaskLine{Bullet: "-", Status: ' ', Content: "read [[Project X]] and [docs](https://example.com)"},
		},
		{
			name:   "trailing space gives empty content",
			line:   "- [ ] ",
			wantOK: true,
			want:   TaskLine{Bullet: "-", Status: ' ', Content: ""},
		},
		{
			name:   "multibyte status",
			line:   "- [→] forwarded",
			wantOK: true,
			want:   TaskLine{Bullet: "-", Status: '→', Content: "forwarded"},
		},
		{name: "bare placeholder", line: "- [ ]", wantOK: false},
		{name: "plain bullet", line: "- just a note", wantOK: false},
		{name: "heading", line: "## Tasks", wantOK: false},
		{name: "plus bullet", line: "+ [ ] nope", wantOK: false},
		{name: "empty checkbox", line: "- [] nope", wantOK: false},
		{name: "two status chars", line: "- [xx] nope", wantOK: false},
		{name: "empty line", line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Recognize(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Recognize(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Recognize(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestStatusKind(t *testing.T) {
	tests := []struct {
		status Status
		want   StatusKind
	}{
		{' ', StatusOpen},
		{'>', StatusMoved},
		{'x', StatusOther},
		{'-', StatusOther},
		{'?', StatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.Kind(); got != tt.want {
				t.Errorf("Status(%q).Kind() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestMarkMoved(t *testing.T) {
	task, _ := Recognize("  * [x] done elsewhere")

	moved, err := task.MarkMoved()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.String() != "  * [>] done elsewhere" {
		t.Errorf("moved line = %q", moved.String())
	}

	if _, err := moved.MarkMoved(); err != ErrAlreadyMoved {
		t.Errorf("second MarkMoved error = %v, want ErrAlreadyMoved", err)
	}
}

func TestToPlainTask(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"- [ ] Buy milk", "- [ ] Buy milk"},
		{"    * [x] Done thing", "- [ ] Done thing"},
		{"- [?] **bold** _it_ [[link]]", "- [ ] **bold** _it_ [[link]]"},
		{"-   [ ]   spaced", "- [ ] spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			task, ok := Recognize(tt.line)
			if !ok {
				t.Fatalf("Recognize(%q) failed", tt.line)
			}
			if got := ToPlainTask(task); got != tt.want {
				t.Errorf("ToPlainTask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToMovedMarker(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"- [ ] Buy milk", "- [>] Buy milk"},
		{"    * [ ] nested star", "    * [>] nested star"},
		{"\t- [/] in progress", "\t- [>] in progress"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			task, _ := Recognize(tt.line)
			if got := ToMovedMarker(task); got != tt.want {
				t.Errorf("ToMovedMarker() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"- [ ]", true},
		{"* [ ]", true},
		{"   - [ ]   ", true},
		{"- [ ] x", false},
		{"- [x]", false},
		{"-  [ ]", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsPlaceholder(tt.line); got != tt.want {
				t.Errorf("IsPlaceholder(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFindNextOpenTask(t *testing.T) {
	lines := []string{
		"# Today",        // 0
		"- [ ] first",    // 1
		"- [x] done",     // 2
		"- [ ]",          // 3 placeholder
		"  * [ ] second", // 4
		"- [>] moved",    // 5
		"some text",      // 6
		"- [ ] third",    // 7
	}

	tests := []struct {
		name   string
		from   int
		want   int
		wantOK bool
	}{
		{"from header", 0, 1, true},
		{"skips done and placeholder", 1, 4, true},
		{"skips moved and text", 4, 7, true},
		{"none after last", 7, -1, false},
		{"from before start", -1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindNextOpenTask(lines, tt.from)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindNextOpenTask(%d) = (%d, %v), want (%d, %v)", tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func taskLineGen() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("", " ", "  ", "\t", "    "),
		gen.OneConstOf("-", "*"),
		gen.OneConstOf(' ', 'x', '>', '-', '/', '?', '!'),
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
	).Map(func(v []interface{}) TaskLine {
		return TaskLine{
			Indent:  v[0].(string),
			Bullet:  v[1].(string),
			Status:  Status(v[2].(rune)),
			Content: v[3].(string),
		}
	})
}

func TestTaskLineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("recognize then reconstruct round-trips", prop.ForAll(
		func(task TaskLine) bool {
			line := task.String()
			got, ok := Recognize(line)
			return ok && got == task && got.String() == line
		},
		taskLineGen(),
	))

	properties.Property("moved marker is recognized as moved", prop.ForAll(
		func(task TaskLine) bool {
			got, ok := Recognize(ToMovedMarker(task))
			if !ok || !got.IsMoved() {
				return false
			}
			_, err := got.MarkMoved()
			return err == ErrAlreadyMoved
		},
		taskLineGen(),
	))

	properties.Property("plain task is an open task", prop.ForAll(
		func(task TaskLine) bool {
			return IsOpenTask(ToPlainTask(task))
		},
		taskLineGen(),
	))

	properties.TestingRun(t)
}
