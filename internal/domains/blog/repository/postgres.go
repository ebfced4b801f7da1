package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/blog/model"
)

type postgresBlogPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBlogPostRepository(pool *pgxpool.Pool) BlogPostRepository {
	return &postgresBlogPostRepository{pool: pool}
}

const blogPostColumns = `
	id, title, excerpt, content, status, author_name,
	slug, meta_title, meta_description, featured_image,
	read_time, category, tags, published_at, created_at, updated_at
`

// orderClause whitelists sortable columns so caller input never reaches
// the ORDER BY directly. published_at sorts NULLS LAST so drafts trail.
func orderClause(opts ListOptions) string {
	column := "created_at"
	switch opts.OrderBy {
	case "published_at":
		column = "published_at"
	case "title":
		column = "title"
	}

	direction := "DESC"
	if opts.Ascending {
		direction = "ASC"
	}

	if column == "published_at" {
		return fmt.Sprintf("ORDER BY %s %s NULLS LAST", column, direction)
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

func (r *postgresBlogPostRepository) Create(ctx context.Context, post *model.BlogPost) error {
	query := `
		INSERT INTO blog_posts (
			title, excerpt, content, status, author_name,
			slug, meta_title, meta_description, featured_image,
			read_time, category, tags, published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Status,
		post.AuthorName,
		post.Slug,
		post.MetaTitle,
		post.MetaDescription,
		post.FeaturedImage,
		post.ReadTime,
		post.Category,
		pq.Array(post.Tags),
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)

	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *postgresBlogPostRepository) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanBlogPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return post, nil
}

func (r *postgresBlogPostRepository) GetPublishedByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1 AND status = $2`

	post, err := scanBlogPost(r.pool.QueryRow(ctx, query, id, model.StatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return post, nil
}

func (r *postgresBlogPostRepository) List(ctx context.Context, opts ListOptions) ([]model.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts `

	var args []interface{}
	if opts.Status != "" {
		query += `WHERE status = $1 `
		args = append(args, opts.Status)
	}
	query += orderClause(opts)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.BlogPost, 0)
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blog posts: %w", err)
	}

	return posts, nil
}

func (r *postgresBlogPostRepository) Update(ctx context.Context, post *model.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET
			title = $2,
			excerpt = $3,
			content = $4,
			status = $5,
			author_name = $6,
			slug = $7,
			meta_title = $8,
			meta_description = $9,
			featured_image = $10,
			read_time = $11,
			category = $12,
			tags = $13,
			published_at = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Status,
		post.AuthorName,
		post.Slug,
		post.MetaTitle,
		post.MetaDescription,
		post.FeaturedImage,
		post.ReadTime,
		post.Category,
		pq.Array(post.Tags),
		post.PublishedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBlogPostNotFound
	}

	return nil
}

func (r *postgresBlogPostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBlogPostNotFound
	}

	return nil
}

func (r *postgresBlogPostRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

func (r *postgresBlogPostRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM blog_posts WHERE status = $1`
	if err := r.pool.QueryRow(ctx, query, model.StatusPublished).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count published blog posts: %w", err)
	}
	return count, nil
}

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	var tags []string

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.Status,
		&post.AuthorName,
		&post.Slug,
		&post.MetaTitle,
		&post.MetaDescription,
		&post.FeaturedImage,
		&post.ReadTime,
		&post.Category,
		pq.Array(&tags),
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Tags = tags
	return post, nil
}
