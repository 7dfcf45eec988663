// Package categories provides the codeframe manager view: category list
// with response counts, create, rename and delete.
package categories

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/messages"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/styles"
	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
)

// state tracks what the view is currently doing.
type state int

const (
	stateList state = iota
	stateFilter
	stateNew
	stateRename
	stateConfirmDelete
)

// View represents the codeframe manager.
type View struct {
	styles    *styles.Styles
	codeframe driving.CodeframeService

	project *domain.Project

	state    state
	metrics  []domain.CategoryMetric
	filtered []domain.CategoryMetric
	cursor   int

	filterInput textinput.Model
	nameInput   textinput.Model
	renameFrom  string

	err error
}

// NewView creates a new codeframe manager view.
func NewView(s *styles.Styles, codeframe driving.CodeframeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.CharLimit = 60

	name := textinput.New()
	name.Placeholder = "category name"
	name.CharLimit = 120

	return &View{
		styles:      s,
		codeframe:   codeframe,
		filterInput: filter,
		nameInput:   name,
	}
}

// SetProject points the view at the open project.
func (v *View) SetProject(p *domain.Project) {
	v.project = p
	v.Refresh()
}

// Refresh recomputes the metrics list.
func (v *View) Refresh() {
	if v.project == nil {
		return
	}
	v.metrics = v.codeframe.Metrics(v.project, false)
	v.applyFilter()
	if v.cursor >= len(v.filtered) {
		v.cursor = 0
	}
}

// applyFilter narrows the list to fuzzy matches of the filter text.
func (v *View) applyFilter() {
	query := strings.TrimSpace(v.filterInput.Value())
	if query == "" {
		v.filtered = v.metrics
		return
	}
	var out []domain.CategoryMetric
	for _, m := range v.metrics {
		if fuzzy.MatchFold(query, m.Name) {
			out = append(out, m)
		}
	}
	v.filtered = out
}

// Capturing reports whether the view wants the escape key for itself.
func (v *View) Capturing() bool {
	return v.state != stateList
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the categories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.state {
	case stateList:
		return v.updateList(key)
	case stateFilter:
		return v.updateFilter(key)
	case stateNew, stateRename:
		return v.updateNameEntry(key)
	case stateConfirmDelete:
		return v.updateConfirmDelete(key)
	}
	return v, nil
}

func (v *View) updateList(key tea.KeyMsg) (*View, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.filtered)-1 {
			v.cursor++
		}
	case "/":
		v.state = stateFilter
		v.filterInput.Focus()
	case "n":
		v.state = stateNew
		v.nameInput.SetValue("")
		v.nameInput.Focus()
	case "r":
		if m, ok := v.current(); ok && m.Name != domain.Uncategorized {
			v.state = stateRename
			v.renameFrom = m.Name
			v.nameInput.SetValue(m.Name)
			v.nameInput.Focus()
		}
	case "d":
		if m, ok := v.current(); ok && m.Name != domain.Uncategorized {
			v.state = stateConfirmDelete
		}
	case "enter":
		if m, ok := v.current(); ok {
			name := m.Name
			return v, func() tea.Msg {
				return messages.CategoryOpened{Name: name}
			}
		}
	}
	return v, nil
}

func (v *View) updateFilter(key tea.KeyMsg) (*View, tea.Cmd) {
	switch key.String() {
	case "enter", "esc":
		v.state = stateList
		v.filterInput.Blur()
		if key.String() == "esc" {
			v.filterInput.SetValue("")
		}
		v.applyFilter()
		v.cursor = 0
		return v, nil
	}
	var cmd tea.Cmd
	v.filterInput, cmd = v.filterInput.Update(key)
	v.applyFilter()
	v.cursor = 0
	return v, cmd
}

func (v *View) updateNameEntry(key tea.KeyMsg) (*View, tea.Cmd) {
	switch key.String() {
	case "esc":
		v.state = stateList
		v.nameInput.Blur()
		v.err = nil
		return v, nil
	case "enter":
		name := v.nameInput.Value()
		var err error
		if v.state == stateNew {
			err = v.codeframe.Create(v.project, name)
		} else {
			err = v.codeframe.Rename(v.project, v.renameFrom, name)
		}
		if err != nil {
			v.err = err
			return v, nil
		}
		v.state = stateList
		v.nameInput.Blur()
		v.err = nil
		v.Refresh()
		return v, func() tea.Msg { return messages.CodeframeChanged{} }
	}
	var cmd tea.Cmd
	v.nameInput, cmd = v.nameInput.Update(key)
	return v, cmd
}

func (v *View) updateConfirmDelete(key tea.KeyMsg) (*View, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		m, ok := v.current()
		if !ok {
			v.state = stateList
			return v, nil
		}
		if err := v.codeframe.Delete(v.project, m.Name); err != nil {
			v.err = err
			v.state = stateList
			return v, nil
		}
		v.state = stateList
		v.err = nil
		v.Refresh()
		return v, func() tea.Msg { return messages.CodeframeChanged{} }
	case "n", "esc":
		v.state = stateList
	}
	return v, nil
}

// current returns the metric under the cursor.
func (v *View) current() (domain.CategoryMetric, bool) {
	if v.cursor < 0 || v.cursor >= len(v.filtered) {
		return domain.CategoryMetric{}, false
	}
	return v.filtered[v.cursor], true
}

// View renders the categories view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Categories"))
	b.WriteString("\n\n")

	if v.state == stateFilter || v.filterInput.Value() != "" {
		b.WriteString("Filter: " + v.filterInput.View())
		b.WriteString("\n\n")
	}

	if len(v.filtered) == 0 {
		b.WriteString(v.styles.Muted.Render("No categories."))
		b.WriteString("\n")
	}
	for i, m := range v.filtered {
		line := fmt.Sprintf("%-30s %6d  %5.1f%%", m.Name, m.Count, m.Percentage)
		style := v.styles.Normal
		if m.Name == domain.Uncategorized {
			style = v.styles.Muted
		}
		if i == v.cursor && v.state == stateList {
			style = v.styles.Selected
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch v.state {
	case stateNew:
		b.WriteString("New category: " + v.nameInput.View())
	case stateRename:
		b.WriteString(fmt.Sprintf("Rename %q: %s", v.renameFrom, v.nameInput.View()))
	case stateConfirmDelete:
		if m, ok := v.current(); ok {
			b.WriteString(v.styles.Warning.Render(
				fmt.Sprintf("Delete %q? Its responses return to Uncategorized. [y/n]", m.Name)))
		}
	default:
		b.WriteString(v.styles.Help.Render(
			"[enter] Open  [n] New  [r] Rename  [d] Delete  [/] Filter  [esc] Back"))
	}
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
