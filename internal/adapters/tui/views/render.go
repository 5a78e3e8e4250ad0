package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"forwardtask/internal/adapters/tui/styles"
	"forwardtask/internal/domain"
)

// RenderHelpLine renders key bindings as "key desc" pairs separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message, red when isError
func RenderMessage(message string, isError bool) string {
	switch {
	case message == "":
		return ""
	case isError:
		return styles.ErrorMsg.Render(message)
	default:
		return styles.Success.Render(message)
	}
}

// RenderStatus renders the cursor position and where moved tasks will land
func RenderStatus(cursor, lineCount int, header string) string {
	pos := styles.StatusKey.Render(fmt.Sprintf("%d/%d", cursor+1, lineCount))
	target := "end of note"
	if header != "" {
		target = header
	}
	return styles.StatusBar.Render(pos + styles.StatusText.Render("insert at: "+target))
}

// RenderLines renders note lines with 1-based numbers, highlighting the cursor line
func RenderLines(lines []string, cursor int) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		var text string
		if i == cursor {
			if line == "" {
				line = " "
			}
			text = styles.LineSelected.Render(line)
		} else {
			text = styles.LineStyle(classify(line)).Render(line)
		}
		rendered[i] = styles.LineNumber.Render(strconv.Itoa(i+1)) + text
	}
	return strings.Join(rendered, "\n")
}

func classify(line string) styles.LineKind {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return styles.KindHeading
	}
	task, ok := domain.Recognize(line)
	if !ok {
		return styles.KindText
	}
	switch task.Status.Kind() {
	case domain.StatusOpen:
		return styles.KindOpenTask
	case domain.StatusMoved:
		return styles.KindMovedTask
	default:
		return styles.KindDoneTask
	}
}
