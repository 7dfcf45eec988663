package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codify-labs/codify-cli/internal/adapters/driven/storage/memory"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/messages"
	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/services"
)

type nopScorer struct{}

func (nopScorer) Score(_, _ string) int { return 0 }

func testPorts() *Ports {
	return NewPorts(
		services.NewMatchService(nopScorer{}),
		services.NewCodeframeService(),
		services.NewAssignmentService(),
		services.NewProjectService(nil, memory.NewProjectStore(), nil, nil),
	)
}

func testProject(t *testing.T) *domain.Project {
	t.Helper()
	p := domain.NewProject("tui-test")
	p.Dataset = domain.NewDataset("id", []string{"answer"}, []domain.Response{
		domain.NewResponse(domain.ResponseKey{Row: "1", Column: "answer"}, "apple"),
	})
	require.NoError(t, p.CreateCategory("Fruit"))
	return p
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, testPorts().Validate())

	incomplete := testPorts()
	incomplete.Match = nil
	assert.Error(t, incomplete.Validate())

	var nilPorts *Ports
	assert.Error(t, nilPorts.Validate())
}

func TestNewApp_RequiresValidPorts(t *testing.T) {
	incomplete := testPorts()
	incomplete.Codeframe = nil

	_, err := NewApp(incomplete, testProject(t), "p.json")
	assert.Error(t, err)
}

func TestNewApp_StartsOnMenu(t *testing.T) {
	app, err := NewApp(testPorts(), testProject(t), "p.json")
	require.NoError(t, err)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ViewChangedSwitchesView(t *testing.T) {
	app, err := NewApp(testPorts(), testProject(t), "p.json")
	require.NoError(t, err)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewCategories})
	app = model.(*App)

	assert.Equal(t, messages.ViewCategories, app.CurrentView())
}

func TestApp_EscReturnsToMenu(t *testing.T) {
	app, err := NewApp(testPorts(), testProject(t), "p.json")
	require.NoError(t, err)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewCategories})
	app = model.(*App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_CategoryOpenedShowsResponses(t *testing.T) {
	app, err := NewApp(testPorts(), testProject(t), "p.json")
	require.NoError(t, err)

	model, _ := app.Update(messages.CategoryOpened{Name: "Fruit"})
	app = model.(*App)

	assert.Equal(t, messages.ViewResponses, app.CurrentView())

	// Escape steps back to the categories list, not the menu.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewCategories, app.CurrentView())
}
