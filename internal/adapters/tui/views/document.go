package views

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"forwardtask/internal/adapters/tui/styles"
	"forwardtask/internal/application/commands"
	"forwardtask/internal/domain"
	"forwardtask/internal/ports"
)

var clipboardWrite = clipboard.WriteAll

// title, subtitle, blank lines, message, status and help
const documentChrome = 10

// DocumentKeyMap defines key bindings for the document view
type DocumentKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextTask key.Binding
	Today    key.Binding
	Tomorrow key.Binding
	NextDay  key.Binding
	Copy     key.Binding
	Open     key.Binding
	Section  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var DocumentKeys = DocumentKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	NextTask: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next task"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Tomorrow: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "tomorrow"),
	),
	NextDay: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next day"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open today"),
	),
	Section: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "section"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DocumentModel shows a note with a line cursor
type DocumentModel struct {
	ViewState
	editor   ports.Editor
	header   string
	viewport viewport.Model
	prompt   *Prompt
}

// NewDocumentModel creates a document view over editor
func NewDocumentModel(editor ports.Editor, header string) *DocumentModel {
	m := &DocumentModel{
		editor:   editor,
		header:   header,
		viewport: viewport.New(80, 20),
	}
	m.Refresh()
	return m
}

// Init initializes the document view
func (m *DocumentModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the document view
func (m *DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m, m.updatePrompt(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, DocumentKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, DocumentKeys.Up):
			m.moveCursor(m.editor.Cursor() - 1)
			return m, nil

		case key.Matches(msg, DocumentKeys.Down):
			m.moveCursor(m.editor.Cursor() + 1)
			return m, nil

		case key.Matches(msg, DocumentKeys.Top):
			m.moveCursor(0)
			return m, nil

		case key.Matches(msg, DocumentKeys.Bottom):
			m.moveCursor(m.editor.LineCount() - 1)
			return m, nil

		case key.Matches(msg, DocumentKeys.NextTask):
			if next, ok := domain.FindNextOpenTask(m.editor.Lines(), m.editor.Cursor()); ok {
				m.moveCursor(next)
			} else {
				m.SetMessage("No open task below", false)
			}
			return m, nil

		case key.Matches(msg, DocumentKeys.Today):
			return m, request(MoveRequestMsg{Offset: 0})

		case key.Matches(msg, DocumentKeys.Tomorrow):
			return m, request(MoveRequestMsg{Offset: 1})

		case key.Matches(msg, DocumentKeys.NextDay):
			return m, request(MoveRequestMsg{Relative: true})

		case key.Matches(msg, DocumentKeys.Copy):
			m.copyTask()
			return m, nil

		case key.Matches(msg, DocumentKeys.Open):
			return m, request(OpenDailyNoteMsg{Offset: 0})

		case key.Matches(msg, DocumentKeys.Section):
			m.prompt = NewPrompt("Section header", "## Tasks (empty appends at the end)", m.header, 200)
			return m, m.prompt.Init()

		case key.Matches(msg, DocumentKeys.Help):
			return m, request(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

func request(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *DocumentModel) updatePrompt(msg tea.Msg) tea.Cmd {
	state, cmd := m.prompt.Update(msg)
	switch state {
	case PromptSubmitted:
		header := m.prompt.Value()
		m.prompt = nil
		return request(SetSectionHeaderMsg{Header: header})
	case PromptCancelled:
		m.prompt = nil
		return nil
	}
	return cmd
}

func (m *DocumentModel) copyTask() {
	task, ok := domain.Recognize(m.editor.Line(m.editor.Cursor()))
	if !ok {
		m.SetMessage(commands.NoticeNotATask, true)
		return
	}
	text := domain.ToPlainTask(task)
	if err := clipboardWrite(text); err != nil {
		m.SetMessage("Copy failed: "+err.Error(), true)
		return
	}
	m.SetMessage("Copied: "+text, false)
}

func (m *DocumentModel) moveCursor(n int) {
	n = min(n, m.editor.LineCount()-1)
	m.editor.SetCursor(max(n, 0))
	m.Refresh()
}

// Prompting reports whether the section header prompt has focus
func (m *DocumentModel) Prompting() bool {
	return m.prompt != nil
}

// SetHeader updates the section header shown in the status bar
func (m *DocumentModel) SetHeader(header string) {
	m.header = header
}

// SetSize updates the view dimensions and the scroll window
func (m *DocumentModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-documentChrome, 3)
	m.Refresh()
}

// Refresh re-renders the note and scrolls the cursor into view
func (m *DocumentModel) Refresh() {
	cursor := m.editor.Cursor()
	m.viewport.SetContent(RenderLines(m.editor.Lines(), cursor))

	switch {
	case cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(cursor)
	case cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(cursor - m.viewport.Height + 1)
	}
}

// View renders the document view
func (m *DocumentModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(string(m.editor.Document())))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	if m.prompt != nil {
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	} else if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString(RenderStatus(m.editor.Cursor(), m.editor.LineCount(), m.header))
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		DocumentKeys.Today,
		DocumentKeys.Tomorrow,
		DocumentKeys.NextDay,
		DocumentKeys.NextTask,
		DocumentKeys.Copy,
		DocumentKeys.Open,
		DocumentKeys.Section,
		DocumentKeys.Help,
		DocumentKeys.Quit,
	))

	return styles.App.Render(b.String())
}
