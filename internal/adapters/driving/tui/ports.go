// Package tui provides the interactive terminal interface for codify.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"errors"

	"github.com/codify-labs/codify-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Match scores responses against queries.
	Match driving.MatchService

	// Codeframe manages the category set.
	Codeframe driving.CodeframeService

	// Assignment mutates response-to-category assignments.
	Assignment driving.AssignmentService

	// Project handles persistence and export.
	Project driving.ProjectService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	match driving.MatchService,
	codeframe driving.CodeframeService,
	assignment driving.AssignmentService,
	project driving.ProjectService,
) *Ports {
	return &Ports{
		Match:      match,
		Codeframe:  codeframe,
		Assignment: assignment,
		Project:    project,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports not configured")
	}
	if p.Match == nil {
		return errors.New("match service is required")
	}
	if p.Codeframe == nil {
		return errors.New("codeframe service is required")
	}
	if p.Assignment == nil {
		return errors.New("assignment service is required")
	}
	if p.Project == nil {
		return errors.New("project service is required")
	}
	return nil
}
