package repository

import (
	"context"

	"portfolio-backend/internal/domains/project/model"
)

// ListOptions controls ordering of a project list read. Ordering is pushed
// into the query; default is created_at descending.
type ListOptions struct {
	OrderBy   string // "created_at" or "title"
	Ascending bool
}

type ProjectRepository interface {
	// Create inserts a new project.
	Create(ctx context.Context, project *model.Project) error

	// GetByID gets a project by id.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// List reads the whole collection with the requested ordering.
	List(ctx context.Context, opts ListOptions) ([]model.Project, error)

	// Update rewrites a project identified by its primary key.
	Update(ctx context.Context, project *model.Project) error

	// Delete removes a project by id.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored projects.
	Count(ctx context.Context) (int, error)
}
