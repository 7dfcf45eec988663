// Package responses provides the category-contents view: the responses
// in one category with occurrence counts, and recategorization of a
// marked selection.
package responses

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/messages"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/styles"
	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
)

// state tracks whether the picker overlay is open.
type state int

const (
	stateList state = iota
	statePicker
)

// View represents the category contents view.
type View struct {
	styles     *styles.Styles
	assignment driving.AssignmentService

	project  *domain.Project
	category string

	state  state
	counts []domain.ResponseCount
	cursor int
	marked map[int]bool

	pickerCursor int

	err    error
	width  int
	height int
}

// NewView creates a new category contents view.
func NewView(s *styles.Styles, assignment driving.AssignmentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		assignment: assignment,
		marked:     make(map[int]bool),
		width:      80,
		height:     24,
	}
}

// SetProject points the view at the open project.
func (v *View) SetProject(p *domain.Project) {
	v.project = p
}

// Open loads the contents of a category.
func (v *View) Open(category string) {
	v.category = category
	v.Refresh()
}

// Refresh reloads the category contents.
func (v *View) Refresh() {
	if v.project == nil || v.category == "" {
		return
	}
	counts, err := v.assignment.ResponsesIn(v.project, v.category)
	v.err = err
	v.counts = counts
	v.cursor = 0
	v.marked = make(map[int]bool)
	v.state = stateList
}

// Capturing reports whether the view wants the escape key for itself.
func (v *View) Capturing() bool {
	return v.state == statePicker
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the responses view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil
	case tea.KeyMsg:
		if v.state == statePicker {
			return v.updatePicker(msg)
		}
		return v.updateList(msg)
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
		if v.cursor < len(v.counts)-1 {
			v.cursor++
		}
	case " ":
		v.marked[v.cursor] = !v.marked[v.cursor]
	case "a":
		all := len(v.selectionKeys()) != totalKeys(v.counts)
		for i := range v.counts {
			v.marked[i] = all
		}
	case "m":
		// Moving out of Uncategorized is plain categorization; use the
		// match workbench for that.
		if v.category != domain.Uncategorized && len(v.selectionKeys()) > 0 {
			v.state = statePicker
			v.pickerCursor = 0
		}
	}
	return v, nil
}

func (v *View) updatePicker(key tea.KeyMsg) (*View, tea.Cmd) {
	names := v.targetNames()
	switch key.String() {
	case "up", "k":
		if v.pickerCursor > 0 {
			v.pickerCursor--
		}
	case "down", "j":
		if v.pickerCursor < len(names)-1 {
			v.pickerCursor++
		}
	case "enter":
		if v.pickerCursor >= len(names) {
			return v, nil
		}
		target := names[v.pickerCursor]
		keys := v.selectionKeys()
		project := v.project
		from := v.category
		svc := v.assignment
		return v, func() tea.Msg {
			err := svc.Recategorize(project, keys, from, []string{target})
			return messages.SelectionCategorized{
				Count:      len(keys),
				Categories: []string{target},
				Err:        err,
			}
		}
	case "esc":
		v.state = stateList
	}
	return v, nil
}

// targetNames lists the categories a selection can move into.
func (v *View) targetNames() []string {
	var out []string
	for _, name := range v.project.Codeframe.Names() {
		if name != v.category {
			out = append(out, name)
		}
	}
	return out
}

// selectionKeys flattens the marked rows to response keys.
func (v *View) selectionKeys() []domain.ResponseKey {
	var keys []domain.ResponseKey
	for i, c := range v.counts {
		if v.marked[i] {
			keys = append(keys, c.Keys...)
		}
	}
	return keys
}

func totalKeys(counts []domain.ResponseCount) int {
	n := 0
	for _, c := range counts {
		n += len(c.Keys)
	}
	return n
}

// View renders the responses view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Responses"))
	b.WriteString("  ")
	b.WriteString(v.styles.Subtitle.Render(v.category))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if v.state == statePicker {
		b.WriteString(v.renderPicker())
		return b.String()
	}

	if len(v.counts) == 0 {
		b.WriteString(v.styles.Muted.Render("Empty."))
		b.WriteString("\n")
		return b.String()
	}

	visible := v.height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}

	for i := start; i < len(v.counts) && i < start+visible; i++ {
		c := v.counts[i]
		mark := "[ ]"
		if v.marked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s x%-4d %s", mark, c.Count, c.Text)
		style := v.styles.Normal
		if v.marked[i] {
			style = v.styles.Marked
		}
		if i == v.cursor {
			style = v.styles.Selected
		}
		if len(line) > v.width-2 && v.width > 5 {
			line = line[:v.width-5] + "..."
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "[space] Mark  [a] Mark all  [esc] Back"
	if v.category != domain.Uncategorized {
		help = "[space] Mark  [a] Mark all  [m] Move  [esc] Back"
	}
	b.WriteString(v.styles.Help.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderPicker() string {
	var b strings.Builder
	names := v.targetNames()

	b.WriteString(v.styles.Subtitle.Render(
		fmt.Sprintf("Move %d response(s) to:", len(v.selectionKeys()))))
	b.WriteString("\n\n")

	if len(names) == 0 {
		b.WriteString(v.styles.Muted.Render("No other category to move to."))
		b.WriteString("\n")
		return b.String()
	}
	for i, name := range names {
		style := v.styles.Normal
		if i == v.pickerCursor {
			style = v.styles.Selected
		}
		b.WriteString("  " + style.Render(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] Move  [esc] Back"))
	b.WriteString("\n")
	return b.String()
}
