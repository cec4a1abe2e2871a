package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/adapters/tui/views"
	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func newApp(t *testing.T) (*App, *application.Labels) {
	t.Helper()
	labels := application.NewLabels(nil, nil)
	_, err := labels.Seed(context.Background())
	require.NoError(t, err)

	app := NewApp(labels)
	app.Update(app.Init()())
	return app, labels
}

func TestApp_SwitchesViews(t *testing.T) {
	app, _ := newApp(t)
	assert.Equal(t, ViewBrowser, app.State())

	app.Update(views.SwitchToHelpMsg{})
	assert.Equal(t, ViewHelp, app.State())
	assert.Contains(t, app.View(), "TakeNotes Help")

	app.Update(views.SwitchToBrowserMsg{})
	assert.Equal(t, ViewBrowser, app.State())

	app.Update(views.SwitchToFormMsg{Mode: views.FormCreateRoot, Kind: domain.KindFolder})
	assert.Equal(t, ViewForm, app.State())

	app.Update(views.SwitchToSearchMsg{Kind: domain.KindTag})
	assert.Equal(t, ViewSearch, app.State())
}

func TestApp_CreateFromBrowser(t *testing.T) {
	app, labels := newApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")})
	app.Update(cmd())
	require.Equal(t, ViewForm, app.State())

	for _, r := range "inbox" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app.Update(cmd())

	assert.Equal(t, ViewBrowser, app.State())
	v, err := labels.Get(domain.KindTag, "inbox")
	require.NoError(t, err)
	assert.Equal(t, 3, v.SortOrder)
	assert.Contains(t, app.View(), "Created tag #inbox")
}

func TestApp_SearchSelectFocusesLabel(t *testing.T) {
	app, labels := newApp(t)
	ui, err := labels.Get(domain.KindTag, "work/design/ui")
	require.NoError(t, err)

	app.Update(views.SwitchToSearchMsg{Kind: domain.KindTag})
	app.Update(views.SearchSelectMsg{Kind: domain.KindTag, ID: ui.ID})

	assert.Equal(t, ViewBrowser, app.State())
	assert.Equal(t, ui.ID, app.browser.Selected().ID)
}
