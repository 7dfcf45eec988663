// Package match provides the match workbench view: enter a query, review
// the scored results, mark a selection and assign it to categories.
package match

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/messages"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/styles"
	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
)

// state tracks which part of the workbench has focus.
type state int

const (
	stateQuery state = iota
	stateResults
	statePicker
)

// View represents the match workbench.
type View struct {
	styles     *styles.Styles
	match      driving.MatchService
	assignment driving.AssignmentService

	project *domain.Project

	queryInput     textinput.Model
	thresholdInput textinput.Model

	state    state
	matches  []domain.Match
	cursor   int
	marked   map[int]bool
	searched bool

	// picker state
	pickerCursor int
	pickerMarked map[int]bool

	err    error
	width  int
	height int
}

// NewView creates a new match workbench view.
func NewView(s *styles.Styles, match driving.MatchService, assignment driving.AssignmentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	query := textinput.New()
	query.Placeholder = "query"
	query.CharLimit = 200
	query.Focus()

	threshold := textinput.New()
	threshold.Placeholder = "75"
	threshold.CharLimit = 3
	threshold.Width = 4

	return &View{
		styles:         s,
		match:          match,
		assignment:     assignment,
		queryInput:     query,
		thresholdInput: threshold,
		marked:         make(map[int]bool),
		pickerMarked:   make(map[int]bool),
		width:          80,
		height:         24,
	}
}

// SetProject points the view at the open project.
func (v *View) SetProject(p *domain.Project) {
	v.project = p
	v.Reset()
}

// Reset clears the results and returns focus to the query input.
func (v *View) Reset() {
	v.state = stateQuery
	v.matches = nil
	v.marked = make(map[int]bool)
	v.pickerMarked = make(map[int]bool)
	v.cursor = 0
	v.pickerCursor = 0
	v.searched = false
	v.err = nil
	v.queryInput.Focus()
}

// Capturing reports whether the view wants the escape key for itself.
func (v *View) Capturing() bool {
	return v.state != stateQuery
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the match view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.MatchCompleted:
		v.searched = true
		v.err = msg.Err
		v.matches = msg.Matches
		v.cursor = 0
		v.marked = make(map[int]bool)
		if msg.Err == nil && len(msg.Matches) > 0 {
			v.state = stateResults
		}
		return v, nil

	case tea.KeyMsg:
		switch v.state {
		case stateQuery:
			return v.updateQuery(msg)
		case stateResults:
			return v.updateResults(msg)
		case statePicker:
			return v.updatePicker(msg)
		}
	}

	return v, v.updateInputs(msg)
}

// updateInputs forwards non-key messages (blink ticks) to the inputs.
func (v *View) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.queryInput, cmd = v.queryInput.Update(msg)
	cmds = append(cmds, cmd)
	v.thresholdInput, cmd = v.thresholdInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (v *View) updateQuery(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v, v.search()
	case "tab":
		if v.queryInput.Focused() {
			v.queryInput.Blur()
			v.thresholdInput.Focus()
		} else {
			v.thresholdInput.Blur()
			v.queryInput.Focus()
		}
		return v, nil
	case "down":
		if len(v.matches) > 0 {
			v.state = stateResults
			v.queryInput.Blur()
			v.thresholdInput.Blur()
		}
		return v, nil
	}

	var cmd tea.Cmd
	if v.queryInput.Focused() {
		v.queryInput, cmd = v.queryInput.Update(msg)
	} else {
		v.thresholdInput, cmd = v.thresholdInput.Update(msg)
	}
	return v, cmd
}

func (v *View) updateResults(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		} else {
			v.state = stateQuery
			v.queryInput.Focus()
		}
	case "down", "j":
		if v.cursor < len(v.matches)-1 {
			v.cursor++
		}
	case " ":
		v.marked[v.cursor] = !v.marked[v.cursor]
	case "a":
		all := len(v.markedIndexes()) != len(v.matches)
		for i := range v.matches {
			v.marked[i] = all
		}
	case "c", "enter":
		if len(v.selectionKeys()) == 0 && len(v.matches) > 0 {
			// Nothing marked: treat the cursor row as the selection.
			v.marked[v.cursor] = true
		}
		if len(v.selectionKeys()) > 0 {
			v.state = statePicker
			v.pickerCursor = 0
			v.pickerMarked = make(map[int]bool)
		}
	case "esc":
		v.state = stateQuery
		v.queryInput.Focus()
	}
	return v, nil
}

func (v *View) updatePicker(msg tea.KeyMsg) (*View, tea.Cmd) {
	names := v.project.Codeframe.Names()
	switch msg.String() {
	case "up", "k":
		if v.pickerCursor > 0 {
			v.pickerCursor--
		}
	case "down", "j":
		if v.pickerCursor < len(names)-1 {
			v.pickerCursor++
		}
	case " ":
		if v.project.Mode == domain.ModeMulti {
			v.pickerMarked[v.pickerCursor] = !v.pickerMarked[v.pickerCursor]
		}
	case "enter":
		categories := v.pickedCategories(names)
		if len(categories) == 0 {
			return v, nil
		}
		return v, v.categorize(categories)
	case "esc":
		v.state = stateResults
	}
	return v, nil
}

// search runs the match as a command.
func (v *View) search() tea.Cmd {
	query := v.queryInput.Value()
	threshold := 75
	if t := strings.TrimSpace(v.thresholdInput.Value()); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil {
			return func() tea.Msg {
				return messages.MatchCompleted{Err: domain.ErrInvalidThreshold}
			}
		}
		threshold = n
	}

	project := v.project
	svc := v.match
	return func() tea.Msg {
		matches, err := svc.Match(context.Background(), project, query,
			domain.MatchOptions{Threshold: threshold})
		return messages.MatchCompleted{Matches: matches, Err: err}
	}
}

// categorize assigns the marked selection as a command.
func (v *View) categorize(categories []string) tea.Cmd {
	keys := v.selectionKeys()
	project := v.project
	svc := v.assignment
	return func() tea.Msg {
		err := svc.Categorize(project, keys, categories)
		return messages.SelectionCategorized{
			Count:      len(keys),
			Categories: categories,
			Err:        err,
		}
	}
}

// selectionKeys flattens the marked matches to response keys.
func (v *View) selectionKeys() []domain.ResponseKey {
	var keys []domain.ResponseKey
	for _, i := range v.markedIndexes() {
		keys = append(keys, v.matches[i].Keys...)
	}
	return keys
}

func (v *View) markedIndexes() []int {
	var out []int
	for i := range v.matches {
		if v.marked[i] {
			out = append(out, i)
		}
	}
	return out
}

// pickedCategories resolves the picker state to category names. Single
// mode always assigns exactly the cursor row.
func (v *View) pickedCategories(names []string) []string {
	if v.project.Mode == domain.ModeSingle || len(v.pickerMarked) == 0 {
		if v.pickerCursor < len(names) {
			return []string{names[v.pickerCursor]}
		}
		return nil
	}
	var out []string
	for i, name := range names {
		if v.pickerMarked[i] {
			out = append(out, name)
		}
	}
	return out
}

// View renders the match workbench.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Match"))
	b.WriteString("\n\n")
	b.WriteString("Query: " + v.queryInput.View())
	b.WriteString("   Threshold: " + v.thresholdInput.View())
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

	b.WriteString(v.renderResults())
	return b.String()
}

func (v *View) renderResults() string {
	var b strings.Builder

	if len(v.matches) == 0 {
		if v.searched {
			b.WriteString(v.styles.Muted.Render("No matches."))
		} else {
			b.WriteString(v.styles.Muted.Render("Enter a query and press Enter."))
		}
		b.WriteString("\n")
		return b.String()
	}

	visible := v.height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}

	for i := start; i < len(v.matches) && i < start+visible; i++ {
		m := v.matches[i]
		mark := "[ ]"
		if v.marked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %3d x%-3d %s", mark, m.Score, m.Count, m.Text)
		style := v.styles.Normal
		if v.marked[i] {
			style = v.styles.Marked
		}
		if i == v.cursor && v.state == stateResults {
			style = v.styles.Selected
		}
		b.WriteString(style.Render(truncate(line, v.width-2)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[space] Mark  [a] Mark all  [c/enter] Categorize  [esc] New query"))
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderPicker() string {
	var b strings.Builder

	names := v.project.Codeframe.Names()
	b.WriteString(v.styles.Subtitle.Render(
		fmt.Sprintf("Assign %d response(s) to:", len(v.selectionKeys()))))
	b.WriteString("\n\n")

	if len(names) == 0 {
		b.WriteString(v.styles.Muted.Render("No categories yet. Create one in the Categories view."))
		b.WriteString("\n")
		return b.String()
	}

	for i, name := range names {
		prefix := "  "
		if v.project.Mode == domain.ModeMulti {
			prefix = "[ ] "
			if v.pickerMarked[i] {
				prefix = "[x] "
			}
		}
		style := v.styles.Normal
		if i == v.pickerCursor {
			style = v.styles.Selected
		}
		b.WriteString(style.Render(prefix + name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "[enter] Assign  [esc] Back"
	if v.project.Mode == domain.ModeMulti {
		help = "[space] Mark  " + help
	}
	b.WriteString(v.styles.Help.Render(help))
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
