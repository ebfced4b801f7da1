package repository

import (
	"context"

	"portfolio-backend/internal/domains/blog/model"
)

// ListOptions controls filtering and ordering of a post list read. Both are
// pushed into the query; an unpublished post never leaves the store on a
// published-only read.
type ListOptions struct {
	Status    string // "" means all statuses
	OrderBy   string // "created_at", "published_at" or "title"
	Ascending bool
}

type BlogPostRepository interface {
	// Create inserts a new post and assigns its generated id.
	Create(ctx context.Context, post *model.BlogPost) error

	// GetByID gets a post by id regardless of status.
	GetByID(ctx context.Context, id int64) (*model.BlogPost, error)

	// GetPublishedByID gets a post by id only if it is published.
	GetPublishedByID(ctx context.Context, id int64) (*model.BlogPost, error)

	// List reads the collection with the requested filter and ordering.
	List(ctx context.Context, opts ListOptions) ([]model.BlogPost, error)

	// Update rewrites a post identified by its primary key.
	Update(ctx context.Context, post *model.BlogPost) error

	// Delete removes a post by id.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored posts.
	Count(ctx context.Context) (int, error)

	// CountPublished returns the number of published posts.
	CountPublished(ctx context.Context) (int, error)
}
