package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"takenotes/internal/adapters/tui/styles"
	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Tab     key.Binding
	New     key.Binding
	NewRoot key.Binding
	Rename  key.Binding
	Delete  key.Binding
	Move    key.Binding
	ToRoot  key.Binding
	Pin     key.Binding
	Copy    key.Binding
	Search  key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "tags/folders"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	NewRoot: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new top-level"),
	),
	Rename: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	ToRoot: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "to top level"),
	),
	Pin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pin"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel move"),
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

// BrowserModel shows one label forest at a time. Expansion state and the
// cursor of each kind survive reloads.
type BrowserModel struct {
	ViewState
	labels   *application.Labels
	kind     domain.Kind
	roots    map[domain.Kind][]*domain.TreeNode
	flat     []*domain.TreeNode
	cursors  map[domain.Kind]int
	expanded map[domain.NodeID]bool
	moving   *domain.TreeNode
	loaded   bool
	copy     func(string) error
}

// NewBrowserModel creates a new browser model starting on the tag forest
func NewBrowserModel(labels *application.Labels) *BrowserModel {
	return &BrowserModel{
		labels:   labels,
		kind:     domain.KindTag,
		roots:    make(map[domain.Kind][]*domain.TreeNode),
		cursors:  make(map[domain.Kind]int),
		expanded: make(map[domain.NodeID]bool),
		copy:     clipboard.WriteAll,
	}
}

// Init loads both forests
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTrees
}

func (m *BrowserModel) loadTrees() tea.Msg {
	trees := make(map[domain.Kind][]*domain.TreeNode)
	for _, kind := range domain.Kinds {
		roots, err := commands.NewBuildTreeCommand(m.labels, kind).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		trees[kind] = roots
	}
	return treeLoadedMsg{trees}
}

type treeLoadedMsg struct {
	trees map[domain.Kind][]*domain.TreeNode
}

type errMsg struct {
	err error
}

// actionDoneMsg reports the outcome of a browser action
type actionDoneMsg struct {
	message string
	err     error
	focus   domain.NodeID
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.roots = msg.trees
		m.loaded = true
		m.refreshFlat()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.Done(msg.message, false, msg.focus)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		m.setCursor(m.cursor() - 1)

	case key.Matches(msg, BrowserKeys.Down):
		m.setCursor(m.cursor() + 1)

	case key.Matches(msg, BrowserKeys.Left):
		node := m.Selected()
		if node == nil {
			return nil
		}
		if node.IsExpanded {
			m.setExpanded(node, false)
		} else if node.Parent != nil {
			m.focus(node.Parent.ID)
		}

	case key.Matches(msg, BrowserKeys.Enter) && m.moving != nil:
		if node := m.Selected(); node != nil {
			return m.moveTo(node)
		}

	case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
		node := m.Selected()
		if node == nil || !node.HasChildren() {
			return nil
		}
		if !node.IsExpanded {
			m.setExpanded(node, true)
		} else if key.Matches(msg, BrowserKeys.Enter) {
			m.setExpanded(node, false)
		}

	case key.Matches(msg, BrowserKeys.Tab):
		m.moving = nil
		m.kind = m.otherKind()
		m.refreshFlat()

	case key.Matches(msg, BrowserKeys.Cancel):
		if m.moving != nil {
			m.moving = nil
			m.SetMessage("Move cancelled", false)
		}

	case key.Matches(msg, BrowserKeys.ToRoot) && m.moving != nil:
		return m.moveTo(nil)

	case key.Matches(msg, BrowserKeys.Move):
		if node := m.Selected(); node != nil {
			m.moving = node
			m.SetMessage(fmt.Sprintf("Moving %s: pick a destination and press enter, r for top level", node.Path), false)
		}

	case key.Matches(msg, BrowserKeys.New):
		node := m.Selected()
		mode := FormCreateChild
		if node == nil {
			mode = FormCreateRoot
		}
		return m.switchToForm(mode, node)

	case key.Matches(msg, BrowserKeys.NewRoot):
		return m.switchToForm(FormCreateRoot, nil)

	case key.Matches(msg, BrowserKeys.Rename):
		if node := m.Selected(); node != nil {
			return m.switchToForm(FormRename, node)
		}

	case key.Matches(msg, BrowserKeys.Delete):
		if node := m.Selected(); node != nil {
			return func() tea.Msg { return SwitchToDeleteMsg{Target: node} }
		}

	case key.Matches(msg, BrowserKeys.Pin):
		if node := m.Selected(); node != nil {
			return m.togglePin(node)
		}

	case key.Matches(msg, BrowserKeys.Copy):
		if node := m.Selected(); node != nil {
			m.copyLabel(node)
		}

	case key.Matches(msg, BrowserKeys.Search):
		kind := m.kind
		return func() tea.Msg { return SwitchToSearchMsg{Kind: kind} }

	case key.Matches(msg, BrowserKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return nil
}

func (m *BrowserModel) switchToForm(mode FormMode, target *domain.TreeNode) tea.Cmd {
	kind := m.kind
	return func() tea.Msg {
		return SwitchToFormMsg{Mode: mode, Kind: kind, Target: target}
	}
}

func (m *BrowserModel) moveTo(dest *domain.TreeNode) tea.Cmd {
	source := m.moving
	m.moving = nil

	var parentRef string
	if dest != nil {
		parentRef = string(dest.ID)
	}
	return func() tea.Msg {
		result, err := commands.NewMoveCommand(m.labels, source.Kind, string(source.ID), parentRef).Execute(context.Background())
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: result.Message, focus: result.Label.ID}
	}
}

func (m *BrowserModel) togglePin(node *domain.TreeNode) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewPinCommand(m.labels, node.Kind, string(node.ID), !node.Pinned).Execute(context.Background())
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: result.Message, focus: node.ID}
	}
}

func (m *BrowserModel) copyLabel(node *domain.TreeNode) {
	text := node.Path
	if node.Kind == domain.KindTag {
		text = domain.DisplayTag(node.Path)
	}
	if err := m.copy(text); err != nil {
		m.SetMessage(fmt.Sprintf("failed to copy: %v", err), true)
		return
	}
	m.SetMessage("Copied "+text, false)
}

// Done reloads both forests after a change made elsewhere, shows message
// and moves the cursor to focus when it is set
func (m *BrowserModel) Done(message string, isErr bool, focus domain.NodeID) {
	if loaded, ok := m.loadTrees().(treeLoadedMsg); ok {
		m.roots = loaded.trees
		m.loaded = true
	}
	m.refreshFlat()
	if focus != "" {
		m.focus(focus)
	}
	m.SetMessage(message, isErr)
}

// ShowKind switches the browser to kind
func (m *BrowserModel) ShowKind(kind domain.Kind) {
	if kind == m.kind {
		return
	}
	m.moving = nil
	m.kind = kind
	m.refreshFlat()
}

// Kind returns the forest currently shown
func (m *BrowserModel) Kind() domain.Kind {
	return m.kind
}

// Moving returns the label marked for moving, if any
func (m *BrowserModel) Moving() *domain.TreeNode {
	return m.moving
}

// Selected returns the node under the cursor
func (m *BrowserModel) Selected() *domain.TreeNode {
	c := m.cursor()
	if c >= 0 && c < len(m.flat) {
		return m.flat[c]
	}
	return nil
}

// Visible returns the rows currently rendered, top to bottom
func (m *BrowserModel) Visible() []*domain.TreeNode {
	return m.flat
}

func (m *BrowserModel) otherKind() domain.Kind {
	if m.kind == domain.KindTag {
		return domain.KindFolder
	}
	return domain.KindTag
}

func (m *BrowserModel) cursor() int {
	return m.cursors[m.kind]
}

func (m *BrowserModel) setCursor(c int) {
	if c >= len(m.flat) {
		c = len(m.flat) - 1
	}
	if c < 0 {
		c = 0
	}
	m.cursors[m.kind] = c
}

func (m *BrowserModel) setExpanded(node *domain.TreeNode, expanded bool) {
	if expanded {
		m.expanded[node.ID] = true
	} else {
		delete(m.expanded, node.ID)
	}
	m.refreshFlat()
}

// focus expands every ancestor of id and moves the cursor onto it
func (m *BrowserModel) focus(id domain.NodeID) {
	for _, root := range m.roots[m.kind] {
		node := root.Find(id)
		if node == nil {
			continue
		}
		for p := node.Parent; p != nil; p = p.Parent {
			m.expanded[p.ID] = true
		}
		m.refreshFlat()
		for i, n := range m.flat {
			if n.ID == id {
				m.setCursor(i)
				return
			}
		}
	}
}

func (m *BrowserModel) refreshFlat() {
	var apply func(nodes []*domain.TreeNode)
	apply = func(nodes []*domain.TreeNode) {
		for _, n := range nodes {
			n.IsExpanded = m.expanded[n.ID]
			apply(n.Children)
		}
	}
	roots := m.roots[m.kind]
	apply(roots)
	m.flat = domain.FlattenAll(roots)
	m.setCursor(m.cursor())
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("TakeNotes"))
	b.WriteString("\n")
	b.WriteString(RenderTabs(m.kind))
	b.WriteString("\n\n")

	if len(m.flat) == 0 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("No %s yet. Press N to create one.", m.kind.Plural())))
		b.WriteString("\n")
	}
	for i, node := range m.flat {
		marked := m.moving != nil && m.moving.ID == node.ID
		b.WriteString(RenderLabel(node, i == m.cursor(), marked))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	if m.moving != nil {
		b.WriteString(RenderHelpLine(BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Enter, BrowserKeys.ToRoot, BrowserKeys.Cancel))
	} else {
		b.WriteString(RenderHelpLine(BrowserKeys.Tab, BrowserKeys.New, BrowserKeys.Rename, BrowserKeys.Delete,
			BrowserKeys.Move, BrowserKeys.Pin, BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit))
	}

	return styles.App.Render(b.String())
}
