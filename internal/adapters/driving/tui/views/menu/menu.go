// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/messages"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	project  string
	mode     string
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Match & categorize", View: messages.ViewMatch},
			{Label: "Categories", View: messages.ViewCategories},
			{Label: "Quit", Quit: true},
		},
	}
}

// SetProject sets the project name and mode shown in the header.
func (v *View) SetProject(name, mode string) {
	v.project = name
	v.mode = mode
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case "enter":
		item := v.items[v.selected]
		if item.Quit {
			return v, tea.Quit
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	case "q":
		return v, tea.Quit
	}
	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Codify"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(v.project + "  [" + v.mode + " mode]"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))
	return b.String()
}
