package store

import (
	"context"

	"talentbase/internal/models"
)

// ListProjects returns every project.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

// GetProject returns the project with the given id, or (nil, nil) when absent.
func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.projects.Get(ctx, id)
}

// CreateProject persists a new project with stamped id and timestamps.
func (s *Store) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	now := s.clock.Now()
	p.ID = s.ids.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = models.ProjectStatusDraft
	}
	if p.Assignments == nil {
		p.Assignments = []models.Assignment{}
	}

	if err := s.projects.Append(ctx, p); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "project created", "id", p.ID)
	return &p, nil
}

// UpdateProject merges the patch onto the stored project and refreshes its
// updatedAt stamp. Returns ErrNotFound when the id is absent.
func (s *Store) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	now := s.clock.Now()
	return s.projects.Update(ctx, id, func(p *models.Project) {
		patch.Apply(p)
		p.UpdatedAt = now
	})
}

// DeleteProject removes the project if present.
func (s *Store) DeleteProject(ctx context.Context, id string) (bool, error) {
	return s.projects.Delete(ctx, id)
}
