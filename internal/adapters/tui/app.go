package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"forwardtask/internal/adapters/notify"
	"forwardtask/internal/adapters/tui/views"
	"forwardtask/internal/application/commands"
	"forwardtask/internal/domain"
	"forwardtask/internal/ports"
)

// Workspace is what the TUI needs from the composition root
type Workspace interface {
	Services(editor ports.Editor, notifier ports.Notifier) commands.Services
	DailyNotePath(ctx context.Context, offset int) (domain.DocumentID, string, error)
}

// Document is an editor that can pick up changes made outside the TUI
type Document interface {
	ports.Editor
	Reload(ctx context.Context) error
}

// ViewState represents the current view
type ViewState int

const (
	ViewDocument ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ctx     context.Context
	ws      Workspace
	doc     Document
	editor  ports.EditorOpener
	notices *notify.Collector

	state    ViewState
	document *views.DocumentModel
	help     *views.HelpModel
}

// NewApp creates a new TUI application over doc. editor may be nil.
func NewApp(ctx context.Context, ws Workspace, doc Document, editor ports.EditorOpener) *App {
	header := ""
	if settings := ws.Services(doc, nil).Settings; settings != nil {
		header = settings.SectionHeader()
	}
	return &App{
		ctx:      ctx,
		ws:       ws,
		doc:      doc,
		editor:   editor,
		notices:  notify.NewCollector(),
		state:    ViewDocument,
		document: views.NewDocumentModel(doc, header),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.document.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.document.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDocumentMsg:
		a.state = ViewDocument
		return a, nil

	case views.MoveRequestMsg:
		a.move(msg)
		return a, nil

	case views.SetSectionHeaderMsg:
		a.setSectionHeader(msg.Header)
		return a, nil

	case views.OpenDailyNoteMsg:
		return a, a.openDailyNote(msg.Offset)

	case editorFinishedMsg:
		if msg.err != nil {
			a.document.SetMessage(msg.err.Error(), true)
		}
		// the note may have been edited, or be the daily note itself
		if err := a.doc.Reload(a.ctx); err != nil {
			a.document.SetMessage(err.Error(), true)
		}
		a.document.Refresh()
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewDocument:
		_, cmd = a.document.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// move runs synchronously so the buffer is never read mid-write
func (a *App) move(msg views.MoveRequestMsg) {
	svc := a.ws.Services(a.doc, a.notices)

	var err error
	if msg.Relative {
		_, err = commands.NewMoveTaskRelativeCommand(svc).Execute(a.ctx)
	} else {
		_, err = commands.NewMoveTaskCommand(svc, msg.Offset).Execute(a.ctx)
	}

	a.document.SetMessage(lastNotice(a.notices), err != nil)
	a.document.Refresh()
}

func (a *App) setSectionHeader(header string) {
	settings := a.ws.Services(a.doc, nil).Settings
	if settings == nil {
		a.document.SetMessage("No settings store", true)
		return
	}

	res, err := commands.NewSetSectionHeaderCommand(settings, header).Execute(a.ctx)
	if err != nil {
		a.document.SetMessage(err.Error(), true)
		return
	}
	a.document.SetHeader(res.Header)
	a.document.SetMessage(res.Message, false)
}

type editorFinishedMsg struct{ err error }

func (a *App) openDailyNote(offset int) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	_, path, err := a.ws.DailyNotePath(a.ctx, offset)
	if err != nil {
		a.document.SetMessage(commands.NoticeFor(err), true)
		return nil
	}

	cmd, err := a.editor.Command(path, 0)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func lastNotice(c *notify.Collector) string {
	msgs := c.Drain()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.document.View()
	}
}
