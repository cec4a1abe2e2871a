package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

// FormMode selects what the label form does on submit
type FormMode int

const (
	FormCreateRoot FormMode = iota
	FormCreateChild
	FormRename
)

// FormModel is the input view for creating and renaming labels
type FormModel struct {
	ViewState
	labels *application.Labels
	mode   FormMode
	kind   domain.Kind
	target *domain.TreeNode
	form   *InputForm
}

// NewFormModel creates a new label form
func NewFormModel(labels *application.Labels) *FormModel {
	return &FormModel{labels: labels}
}

// Open resets the form for a new submission. target is the parent when
// creating a child and the label itself when renaming.
func (m *FormModel) Open(mode FormMode, kind domain.Kind, target *domain.TreeNode) {
	m.mode = mode
	m.kind = kind
	m.target = target
	m.ClearMessage()

	name := NewInputField("Name:", "e.g. meetings", application.MaxLabelNameLength)
	switch mode {
	case FormRename:
		m.form = NewInputForm(name)
		if target != nil {
			m.form.SetValue(0, target.Name)
			m.form.Fields[0].Input.CursorEnd()
		}
	default:
		icon := NewInputField("Icon (optional):", "emoji or symbol name, e.g. 📅 or star", 64)
		color := NewInputField("Color (optional):", "#RRGGBB", 9)
		m.form = NewInputForm(name, icon, color)
	}
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FormErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			return m, func() tea.Msg { return m.submit(context.Background()) }
		}
	}

	if handled, cmd := m.form.Update(msg); handled || cmd != nil {
		return m, cmd
	}
	return m, nil
}

// FormErrMsg keeps the form open with an error
type FormErrMsg struct {
	Err error
}

func (m *FormModel) submit(ctx context.Context) tea.Msg {
	switch m.mode {
	case FormRename:
		if m.target == nil {
			return FormErrMsg{Err: fmt.Errorf("no %s selected", m.kind)}
		}
		result, err := commands.NewRenameCommand(m.labels, m.kind, string(m.target.ID), m.form.Value(0)).Execute(ctx)
		if err != nil {
			return FormErrMsg{Err: err}
		}
		return SwitchToBrowserMsg{Message: result.Message, Focus: result.Label.ID}

	default:
		style, err := m.style()
		if err != nil {
			return FormErrMsg{Err: err}
		}
		var parentRef string
		if m.mode == FormCreateChild && m.target != nil {
			parentRef = string(m.target.ID)
		}
		result, err := commands.NewCreateLabelCommand(m.labels, m.kind, parentRef, m.form.Value(0), style).Execute(ctx)
		if err != nil {
			return FormErrMsg{Err: err}
		}
		return SwitchToBrowserMsg{Message: result.Message, Focus: result.Label.ID}
	}
}

func (m *FormModel) style() (application.LabelStyle, error) {
	icon, err := application.ParseIcon(m.form.Value(1))
	if err != nil {
		return application.LabelStyle{}, &application.ValidationError{Field: "icon", Message: err.Error()}
	}
	style := application.LabelStyle{Icon: icon}
	if color := m.form.Value(2); color != "" {
		style.ColorHex = &color
	}
	return style, nil
}

func (m *FormModel) title() string {
	switch m.mode {
	case FormRename:
		return fmt.Sprintf("Rename %s", m.kind)
	case FormCreateChild:
		return fmt.Sprintf("New %s", m.kind)
	default:
		return fmt.Sprintf("New top-level %s", m.kind)
	}
}

func (m *FormModel) subtitle() string {
	if m.target == nil {
		return fmt.Sprintf("Creates a %s at the top level.", m.kind)
	}
	if m.mode == FormRename {
		return fmt.Sprintf("Renaming %s. Nested %s follow.", m.target.Path, m.kind.Plural())
	}
	return fmt.Sprintf("Inside %s", m.target.Path)
}

// View renders the form view
func (m *FormModel) View() string {
	submit := "create"
	if m.mode == FormRename {
		submit = "rename"
	}
	return NewViewBuilder().
		Title(m.title()).
		Subtitle(m.subtitle()).
		Raw(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp(submit)).
		String()
}
