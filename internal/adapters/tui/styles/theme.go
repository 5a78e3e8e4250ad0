package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	Link      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Document line styles
	LineNumber = lipgloss.NewStyle().
			Foreground(Muted).
			Width(5).
			Align(lipgloss.Right).
			MarginRight(1)

	LineText = lipgloss.NewStyle()

	LineHeading = lipgloss.NewStyle().
			Foreground(Link).
			Bold(true)

	TaskOpen = lipgloss.NewStyle().
			Foreground(White)

	TaskDone = lipgloss.NewStyle().
			Foreground(Secondary).
			Strikethrough(true)

	TaskMoved = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	LineSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// LineStyle picks the style for a note line by what it holds
func LineStyle(kind LineKind) lipgloss.Style {
	switch kind {
	case KindHeading:
		return LineHeading
	case KindOpenTask:
		return TaskOpen
	case KindDoneTask:
		return TaskDone
	case KindMovedTask:
		return TaskMoved
	default:
		return LineText
	}
}

// LineKind classifies a note line for rendering
type LineKind int

const (
	KindText LineKind = iota
	KindHeading
	KindOpenTask
	KindDoneTask
	KindMovedTask
)
