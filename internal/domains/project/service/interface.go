package service

import (
	"context"

	"portfolio-backend/internal/domains/project/model"
)

type ServiceInterface interface {
	// ListPublic resolves the public project list: store records when the
	// read succeeds with results, the compiled-in seed set otherwise.
	// Category and search filters apply after resolution.
	ListPublic(ctx context.Context, query model.ListProjectsQuery) (*model.ProjectListResponse, error)

	// ListAdmin reads the stored collection, created_at descending.
	// Store errors are returned so the dashboard can surface them.
	ListAdmin(ctx context.Context) ([]model.Project, error)

	// GetProject gets one project by id.
	GetProject(ctx context.Context, id string) (*model.Project, error)

	// CreateProject validates and inserts a new project.
	CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error)

	// UpdateProject validates and rewrites the project with the given id,
	// returning the updated entity so callers can patch their lists.
	UpdateProject(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error)

	// DeleteProject removes one project by id.
	DeleteProject(ctx context.Context, id string) error

	// Count returns the number of stored projects.
	Count(ctx context.Context) (int, error)
}
