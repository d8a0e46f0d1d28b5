package views

import "declutter/internal/application/commands"

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

// CleanupDoneMsg carries the outcome of a finished run and its summary
type CleanupDoneMsg struct {
	Result  *commands.CleanupResult
	Summary *commands.SummaryResult
}

// CleanupErrMsg reports a run that could not start or finish
type CleanupErrMsg struct {
	Err error
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToReportMsg returns to the report view
type SwitchToReportMsg struct{}
