// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/codify-labs/codify-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewMatch is the match workbench: query, results, category picker.
	ViewMatch
	// ViewCategories is the codeframe manager.
	ViewCategories
	// ViewResponses lists the contents of one category.
	ViewResponses
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewMatch:
		return "match"
	case ViewCategories:
		return "categories"
	case ViewResponses:
		return "responses"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// MatchCompleted carries match results back to the model.
type MatchCompleted struct {
	Matches []domain.Match
	Err     error
}

// SelectionCategorized signals that a match selection was assigned.
type SelectionCategorized struct {
	Count      int
	Categories []string
	Err        error
}

// CodeframeChanged signals the category set was mutated and views
// showing it should refresh.
type CodeframeChanged struct{}

// CategoryOpened requests the responses view for one category.
type CategoryOpened struct {
	Name string
}

// ProjectSaved signals the project file was written.
type ProjectSaved struct {
	Path string
	Err  error
}

// ProjectChangedOnDisk signals the open project file was written by
// someone else.
type ProjectChangedOnDisk struct {
	Path string
}

// StatusSet updates the status bar text.
type StatusSet struct {
	Text string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
