package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line message
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// MoveRequestMsg asks the app to move the task under the cursor.
// Relative moves ignore Offset and target the day after the open daily note.
type MoveRequestMsg struct {
	Offset   int
	Relative bool
}

// OpenDailyNoteMsg asks the app to open the daily note Offset days from today in $EDITOR
type OpenDailyNoteMsg struct {
	Offset int
}

// SetSectionHeaderMsg carries a section header entered at the prompt
type SetSectionHeaderMsg struct {
	Header string
}

type SwitchToHelpMsg struct{}

type SwitchToDocumentMsg struct{}
