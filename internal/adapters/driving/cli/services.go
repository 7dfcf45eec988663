package cli

import (
	"errors"
	"fmt"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
)

// Services aggregates everything the commands need. Populated once by
// main before Execute.
type Services struct {
	Match      driving.MatchService
	Codeframe  driving.CodeframeService
	Assignment driving.AssignmentService
	Project    driving.ProjectService
	Session    driven.SessionStore
	Config     driven.ConfigStore
}

var (
	matchService      driving.MatchService
	codeframeService  driving.CodeframeService
	assignmentService driving.AssignmentService
	projectService    driving.ProjectService
	sessionStore      driven.SessionStore
	configStore       driven.ConfigStore
)

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	matchService = s.Match
	codeframeService = s.Codeframe
	assignmentService = s.Assignment
	projectService = s.Project
	sessionStore = s.Session
	configStore = s.Config
}

// loadProject loads the project named by --project.
func loadProject() (*domain.Project, error) {
	if projectService == nil {
		return nil, errors.New("project service not configured")
	}
	if projectPath == "" {
		return nil, errors.New("no project file: pass --project/-p")
	}
	return projectService.Load(projectPath)
}

// saveProject writes the project back to the --project path.
func saveProject(project *domain.Project) error {
	if err := projectService.Save(project, projectPath); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// defaultThreshold returns the configured match threshold, or 75.
func defaultThreshold() int {
	if configStore != nil {
		if t := configStore.GetInt("match.threshold"); t > 0 {
			return t
		}
	}
	return 75
}
