package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"forwardtask/internal/adapters/tui/styles"
)

// PromptKeyMap defines key bindings for a single-line prompt
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var PromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptState reports what the last key did to the prompt
type PromptState int

const (
	PromptEditing PromptState = iota
	PromptSubmitted
	PromptCancelled
)

// Prompt is a labelled text input that ends on enter or esc
type Prompt struct {
	Label string
	Input textinput.Model
}

// NewPrompt creates a focused prompt holding value
func NewPrompt(label, placeholder, value string, charLimit int) *Prompt {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()
	return &Prompt{Label: label, Input: input}
}

// Init returns the blink command for the input
func (p *Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update feeds msg to the input unless it submits or cancels the prompt
func (p *Prompt) Update(msg tea.Msg) (PromptState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, PromptKeys.Submit):
			return PromptSubmitted, nil
		case key.Matches(msg, PromptKeys.Cancel):
			return PromptCancelled, nil
		}
	}

	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return PromptEditing, cmd
}

// Value returns the trimmed input
func (p *Prompt) Value() string {
	return strings.TrimSpace(p.Input.Value())
}

// View renders the label, the input box and its key help
func (p *Prompt) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(p.Label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(p.Input.View()))
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(PromptKeys.Submit, PromptKeys.Cancel))
	return b.String()
}
