package views

import "takenotes/internal/domain"

// ViewState contains common state shared by the view models.
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

type SwitchToFormMsg struct {
	Mode   FormMode
	Kind   domain.Kind
	Target *domain.TreeNode // parent for create, label for rename
}

type SwitchToDeleteMsg struct {
	Target *domain.TreeNode
}

type SwitchToSearchMsg struct {
	Kind domain.Kind
}

type SwitchToHelpMsg struct{}

// SwitchToBrowserMsg returns to the browser. A non-empty Message is shown
// in the status line and triggers a reload.
type SwitchToBrowserMsg struct {
	Message string
	Err     bool
	Focus   domain.NodeID
}
