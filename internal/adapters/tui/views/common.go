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

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type (
	// SwitchToHelpMsg shows the help screen
	SwitchToHelpMsg struct{}

	// SwitchToBrowserMsg returns to the tree
	SwitchToBrowserMsg struct{}

	// SelectMsg ends the session with a chosen folder
	SelectMsg struct {
		Path string
	}

	// OpenEditorMsg asks the app to hand the terminal to the editor
	OpenEditorMsg struct {
		Path string
	}
)
