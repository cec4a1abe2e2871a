package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"takenotes/internal/adapters/tui/styles"
	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const maxSearchResults = 10

// SearchModel filters one label kind by fuzzy name/path match
type SearchModel struct {
	ViewState
	labels  *application.Labels
	kind    domain.Kind
	input   textinput.Model
	results []commands.SearchResult
	cursor  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(labels *application.Labels) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search..."
	input.Focus()

	return &SearchModel{
		labels: labels,
		kind:   domain.KindTag,
		input:  input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and targets kind
func (m *SearchModel) Reset(kind domain.Kind) {
	m.kind = kind
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		if msg.query != m.input.Value() {
			return m, nil // stale
		}
		m.results = msg.results
		m.cursor = 0
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxSearchResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				result := m.results[m.cursor]
				return m, func() tea.Msg {
					return SearchSelectMsg{Kind: result.Kind, ID: result.ID}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if len(strings.TrimSpace(query)) == 0 {
		m.results = nil
		return m, cmd
	}
	return m, tea.Batch(cmd, m.search(query))
}

func (m *SearchModel) search(query string) tea.Cmd {
	kind := m.kind
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(m.labels, kind, query).Execute(context.Background())
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

type searchResultsMsg struct {
	query   string
	results []commands.SearchResult
	err     error
}

// SearchSelectMsg is sent when a search result is picked
type SearchSelectMsg struct {
	Kind domain.Kind
	ID   domain.NodeID
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search " + m.kind.Plural()))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(domain.ParseLabelRef(m.input.Value())) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		for i := range min(len(m.results), maxSearchResults) {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}
		if len(m.results) > maxSearchResults {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-maxSearchResults)))
		}
	}

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result commands.SearchResult, selected bool) string {
	text := result.Path
	if result.Kind == domain.KindTag {
		text = result.DisplayTag()
	}
	if glyph := result.DisplayIcon.Glyph(); glyph != "" {
		text = glyph + " " + text
	}

	if selected {
		return styles.NodeSelected.Render(text)
	}
	return text
}
