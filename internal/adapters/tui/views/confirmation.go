package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"takenotes/internal/adapters/tui/styles"
	"takenotes/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel is the base for yes/no views
type ConfirmationModel struct {
	ViewState
	TargetNode *domain.TreeNode
	Keys       ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget sets the node the confirmation is about
func (m *ConfirmationModel) SetTarget(node *domain.TreeNode) {
	m.TargetNode = node
	m.ClearMessage()
}

// HandleKeyMsg processes key messages for confirmation views.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, onCancel
	case key.Matches(msg, m.Keys.Confirm):
		return true, onConfirm
	}
	return false, nil
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// RenderTargetInfo renders "<Action> <kind>:" followed by the label path
func RenderTargetInfo(node *domain.TreeNode, action string) string {
	if node == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(action + " " + node.Kind.String() + ":"))
	b.WriteString("\n  ")
	if glyph := node.Icon.Glyph(); glyph != "" {
		b.WriteString(glyph + " ")
	}
	if node.Kind == domain.KindTag {
		b.WriteString(domain.DisplayTag(node.Path))
	} else {
		b.WriteString(node.Path)
	}
	return b.String()
}

// countDescendants counts the display subtree below node
func countDescendants(node *domain.TreeNode) int {
	n := 0
	for _, child := range node.Children {
		n += 1 + countDescendants(child)
	}
	return n
}
