package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"takenotes/internal/adapters/tui/styles"
	"takenotes/internal/application"
	"takenotes/internal/application/commands"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	labels *application.Labels
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(labels *application.Labels) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		labels:            labels,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete(context.Background()) },
			func() tea.Msg { return SwitchToBrowserMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete(ctx context.Context) tea.Msg {
	if m.TargetNode == nil {
		return SwitchToBrowserMsg{Message: "nothing selected", Err: true}
	}

	result, err := commands.NewDeleteCommand(m.labels, m.TargetNode.Kind, string(m.TargetNode.ID)).Execute(ctx)
	if err != nil {
		return SwitchToBrowserMsg{Message: err.Error(), Err: true}
	}
	return SwitchToBrowserMsg{Message: result.Message}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder().
		Title("Delete Confirmation").
		Raw(styles.ErrorMsg.Render("This action cannot be undone!")).
		BlankLine().BlankLine().
		Raw(RenderTargetInfo(m.TargetNode, "Delete")).
		BlankLine().BlankLine()

	if m.TargetNode != nil {
		if n := countDescendants(m.TargetNode); n > 0 {
			v.Muted(fmt.Sprintf("  %d nested %s will be deleted too.", n, plural(n, m.TargetNode.Kind.String())))
			v.BlankLine()
		}
	}

	return v.Raw(RenderConfirmPrompt("Are you sure?")).String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
