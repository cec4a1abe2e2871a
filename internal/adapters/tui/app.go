package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"takenotes/internal/adapters/tui/views"
	"takenotes/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewForm
	ViewDelete
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	labels *application.Labels

	state   ViewState
	browser *views.BrowserModel
	form    *views.FormModel
	delete  *views.DeleteModel
	search  *views.SearchModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over a loaded label service
func NewApp(labels *application.Labels) *App {
	return &App{
		labels:  labels,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(labels),
		form:    views.NewFormModel(labels),
		delete:  views.NewDeleteModel(labels),
		search:  views.NewSearchModel(labels),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.Open(msg.Mode, msg.Kind, msg.Target)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Target)
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset(msg.Kind)
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		if msg.Message != "" {
			a.browser.Done(msg.Message, msg.Err, msg.Focus)
		}
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewBrowser
		a.browser.ShowKind(msg.Kind)
		a.browser.Done("", false, msg.ID)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the application
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.delete.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
