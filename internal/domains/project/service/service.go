package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/content"
	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/pkg/logger"
)

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ServiceInterface {
	return &projectService{repo: repo}
}

// =====================================================
// PUBLIC READS
// =====================================================

func (s *projectService) ListPublic(ctx context.Context, query model.ListProjectsQuery) (*model.ProjectListResponse, error) {
	remote, err := s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at"})
	if err != nil {
		// A failed read degrades to the seed set on the public page; the
		// error is logged, not surfaced to visitors.
		logger.Error("project list read failed, serving fallback", err)
		remote = nil
	}

	resolved := content.Resolve(remote, model.Seed())

	filtered := content.Filter(resolved.Items, func(p model.Project) bool {
		return p.MatchesCategory(query.Category) && p.MatchesSearch(query.Search)
	})

	return &model.ProjectListResponse{
		Source:   string(resolved.Source),
		Projects: filtered,
		Total:    len(filtered),
	}, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *projectService) ListAdmin(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at"})
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	// Required fields are checked before any write is attempted.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &model.Project{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		TechStack:       req.TechStack,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Level:           req.Level,
		Impact:          req.Impact,
		LearningOutcome: req.LearningOutcome,
		ImageURL:        req.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if project.TechStack == nil {
		project.TechStack = []string{}
	}
	if project.ImageURL == "" {
		project.ImageURL = model.PlaceholderImageURL
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Category = req.Category
	existing.TechStack = req.TechStack
	existing.GithubURL = req.GithubURL
	existing.LiveURL = req.LiveURL
	existing.Level = req.Level
	existing.Impact = req.Impact
	existing.LearningOutcome = req.LearningOutcome
	existing.ImageURL = req.ImageURL
	existing.UpdatedAt = time.Now()

	if existing.TechStack == nil {
		existing.TechStack = []string{}
	}
	if existing.ImageURL == "" {
		existing.ImageURL = model.PlaceholderImageURL
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *projectService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
