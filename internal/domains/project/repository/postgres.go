package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/project/model"
)

type postgresProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &postgresProjectRepository{pool: pool}
}

const projectColumns = `
	id, title, description, category, tech_stack,
	github_url, live_url, level, impact, learning_outcome,
	image_url, created_at, updated_at
`

// orderClause whitelists sortable columns so caller input never reaches
// the ORDER BY directly.
func orderClause(opts ListOptions) string {
	column := "created_at"
	if opts.OrderBy == "title" {
		column = "title"
	}

	direction := "DESC"
	if opts.Ascending {
		direction = "ASC"
	}

	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

func (r *postgresProjectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `
		INSERT INTO projects (
			id, title, description, category, tech_stack,
			github_url, live_url, level, impact, learning_outcome,
			image_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Category,
		pq.Array(project.TechStack),
		project.GithubURL,
		project.LiveURL,
		project.Level,
		project.Impact,
		project.LearningOutcome,
		project.ImageURL,
		project.CreatedAt,
		project.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *postgresProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

func (r *postgresProjectRepository) List(ctx context.Context, opts ListOptions) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ` + orderClause(opts)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

func (r *postgresProjectRepository) Update(ctx context.Context, project *model.Project) error {
	query := `
		UPDATE projects
		SET
			title = $2,
			description = $3,
			category = $4,
			tech_stack = $5,
			github_url = $6,
			live_url = $7,
			level = $8,
			impact = $9,
			learning_outcome = $10,
			image_url = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Category,
		pq.Array(project.TechStack),
		project.GithubURL,
		project.LiveURL,
		project.Level,
		project.Impact,
		project.LearningOutcome,
		project.ImageURL,
	)

	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

func scanProject(row pgx.Row) (*model.Project, error) {
	project := &model.Project{}
	var techStack []string

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Category,
		pq.Array(&techStack),
		&project.GithubURL,
		&project.LiveURL,
		&project.Level,
		&project.Impact,
		&project.LearningOutcome,
		&project.ImageURL,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.TechStack = techStack
	return project, nil
}
