package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codify-labs/codify-cli/internal/adapters/driven/watch"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/tui"
	"github.com/codify-labs/codify-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for codify.

The TUI is the match workbench: enter a query, mark the similar
responses and assign them to categories, manage the codeframe and
review category contents, all with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Space    - Mark / unmark
  Enter    - Search / Select
  Esc      - Back
  Ctrl+S   - Save
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if matchService == nil || codeframeService == nil ||
		assignmentService == nil || projectService == nil {
		return errors.New("services not configured")
	}

	project, err := loadProject()
	if err != nil {
		return err
	}

	ports := tui.NewPorts(matchService, codeframeService, assignmentService, projectService)
	app, err := tui.NewApp(ports, project, projectPath)
	if err != nil {
		return fmt.Errorf("starting TUI: %w", err)
	}

	// Warn when someone else writes the open project file. Best effort:
	// the TUI works fine without the watcher.
	if watcher, werr := watch.NewWatcher(); werr == nil {
		if ch, werr := watcher.Watch(projectPath); werr == nil {
			app = app.WithWatcher(ch)
		} else {
			logger.Warn("Project file watch unavailable: %v", werr)
		}
		defer watcher.Close()
	} else {
		logger.Warn("Project file watch unavailable: %v", werr)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
