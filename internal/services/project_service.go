package services

import (
	"context"
	"fmt"
	"time"

	"tidepool.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	source  Source
	timeout time.Duration
}

// NewProjectService creates a new ProjectService.
// A zero timeout leaves the fetch unbounded.
func NewProjectService(source Source, timeout time.Duration) *ProjectService {
	return &ProjectService{source: source, timeout: timeout}
}

// Fetch retrieves and decodes the full project list
func (s *ProjectService) Fetch(ctx context.Context) ([]models.ProjectRecord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := models.ParseProjects(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.source, err)
	}
	return projects, nil
}

// Source returns where projects are loaded from
func (s *ProjectService) Source() string {
	return s.source.String()
}
