package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/keymap"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/messages"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/styles"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/views/categories"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/views/match"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/views/menu"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/views/responses"
	"github.com/codify-labs/codify-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// project is the open project aggregate. All views share it.
	project *domain.Project

	// projectPath is where the project is saved.
	projectPath string

	// external delivers notifications of on-disk changes to the
	// project file, if a watcher is attached.
	external <-chan string

	styles *styles.Styles
	keys   *keymap.KeyMap

	menuView       *menu.View
	matchView      *match.View
	categoriesView *categories.View
	responsesView  *responses.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// status is the status bar text.
	status string

	// statusIsError styles the status bar as an error.
	statusIsError bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application for an open project.
func NewApp(ports *Ports, project *domain.Project, projectPath string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if project == nil {
		return nil, domain.ErrNoDataset
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:          ports,
		project:        project,
		projectPath:    projectPath,
		styles:         s,
		keys:           keymap.DefaultKeyMap(),
		menuView:       menu.NewView(s),
		matchView:      match.NewView(s, ports.Match, ports.Assignment),
		categoriesView: categories.NewView(s, ports.Codeframe),
		responsesView:  responses.NewView(s, ports.Assignment),
		currentView:    messages.ViewMenu,
	}

	a.menuView.SetProject(project.Name, project.Mode.String())
	a.matchView.SetProject(project)
	a.categoriesView.SetProject(project)
	a.responsesView.SetProject(project)
	return a, nil
}

// WithWatcher attaches a channel of external project-file changes.
func (a *App) WithWatcher(ch <-chan string) *App {
	a.external = ch
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.matchView.Init()}
	if a.external != nil {
		cmds = append(cmds, a.waitExternal())
	}
	return tea.Batch(cmds...)
}

// waitExternal blocks on the watcher channel as a command.
func (a *App) waitExternal() tea.Cmd {
	ch := a.external
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ProjectChangedOnDisk{Path: path}
	}
}

// save writes the project file as a command.
func (a *App) save() tea.Cmd {
	project := a.project
	path := a.projectPath
	svc := a.ports.Project
	return func() tea.Msg {
		err := svc.Save(project, path)
		return messages.ProjectSaved{Path: path, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every view tracks its own dimensions.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.matchView, cmd = a.matchView.Update(msg)
		cmds = append(cmds, cmd)
		a.responsesView, cmd = a.responsesView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.CategoryOpened:
		a.responsesView.Open(msg.Name)
		a.currentView = messages.ViewResponses
		return a, nil

	case messages.SelectionCategorized:
		if msg.Err != nil {
			a.setStatus("Error: "+msg.Err.Error(), true)
			return a, nil
		}
		a.setStatus(fmt.Sprintf("Categorized %d response(s)", msg.Count), false)
		// The selection left its pool; rebuild whatever shows it.
		a.matchView.Reset()
		a.categoriesView.Refresh()
		if a.currentView == messages.ViewResponses {
			a.responsesView.Refresh()
		}
		return a, a.save()

	case messages.CodeframeChanged:
		a.categoriesView.Refresh()
		return a, a.save()

	case messages.ProjectSaved:
		if msg.Err != nil {
			a.setStatus("Save failed: "+msg.Err.Error(), true)
		} else {
			a.setStatus("Saved "+msg.Path, false)
		}
		return a, nil

	case messages.ProjectChangedOnDisk:
		a.setStatus("Project file changed on disk; saving will overwrite it", true)
		return a, a.waitExternal()

	case messages.StatusSet:
		a.setStatus(msg.Text, false)
		return a, nil

	case messages.ErrorOccurred:
		a.setStatus("Error: "+msg.Err.Error(), true)
		return a, nil

	case messages.MatchCompleted:
		var cmd tea.Cmd
		a.matchView, cmd = a.matchView.Update(msg)
		return a, cmd
	}

	return a, a.forward(msg)
}

// updateKey routes key presses: a few global bindings, the rest to the
// active view.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+s":
		return a, a.save()
	case "esc":
		if !a.activeCaptures() {
			a.goBack()
			return a, nil
		}
	}
	return a, a.forward(msg)
}

// activeCaptures reports whether the active view is mid-operation and
// wants the escape key for itself.
func (a *App) activeCaptures() bool {
	switch a.currentView {
	case messages.ViewMatch:
		return a.matchView.Capturing()
	case messages.ViewCategories:
		return a.categoriesView.Capturing()
	case messages.ViewResponses:
		return a.responsesView.Capturing()
	default:
		return false
	}
}

// goBack steps one level up the view hierarchy.
func (a *App) goBack() {
	switch a.currentView {
	case messages.ViewResponses:
		a.currentView = messages.ViewCategories
		a.categoriesView.Refresh()
	case messages.ViewMenu:
		// Nothing above the menu.
	default:
		a.currentView = messages.ViewMenu
	}
}

// switchTo activates a view, refreshing it on entry.
func (a *App) switchTo(view messages.ViewType) {
	a.currentView = view
	switch view {
	case messages.ViewCategories:
		a.categoriesView.Refresh()
	case messages.ViewResponses:
		a.responsesView.Refresh()
	}
}

// forward delivers a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewMatch:
		a.matchView, cmd = a.matchView.Update(msg)
	case messages.ViewCategories:
		a.categoriesView, cmd = a.categoriesView.Update(msg)
	case messages.ViewResponses:
		a.responsesView, cmd = a.responsesView.Update(msg)
	}
	return cmd
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.statusIsError = isError
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case messages.ViewMenu:
		body = a.menuView.View()
	case messages.ViewMatch:
		body = a.matchView.View()
	case messages.ViewCategories:
		body = a.categoriesView.View()
	case messages.ViewResponses:
		body = a.responsesView.View()
	}

	status := a.status
	if status == "" {
		status = fmt.Sprintf("%s  [%s mode]  ctrl+s save, ctrl+c quit",
			a.project.Name, a.project.Mode)
	}
	bar := a.styles.StatusBar.Render(status)
	if a.statusIsError {
		bar = a.styles.Error.Render(status)
	}
	return body + "\n" + bar + "\n"
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}
