package service

import (
	"context"

	"portfolio-backend/internal/domains/blog/model"
)

type ServiceInterface interface {
	// ListPublic resolves the public post list: published store records when
	// the read succeeds with results, the compiled-in seed set otherwise.
	// Category and search filters apply after resolution.
	ListPublic(ctx context.Context, query model.ListBlogPostsQuery) (*model.BlogPostListResponse, error)

	// GetPublished gets one published post by id, falling back to the seed
	// set when the store cannot serve it.
	GetPublished(ctx context.Context, id int64) (*model.BlogPost, error)

	// ListAdmin reads the stored collection regardless of status,
	// created_at descending. Store errors are returned so the dashboard can
	// surface them.
	ListAdmin(ctx context.Context) ([]model.BlogPost, error)

	// GetPost gets one post by id regardless of status.
	GetPost(ctx context.Context, id int64) (*model.BlogPost, error)

	// CreatePost validates, fills derived fields and inserts a new post.
	CreatePost(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error)

	// UpdatePost validates and rewrites the post with the given id,
	// returning the updated entity so callers can patch their lists.
	UpdatePost(ctx context.Context, id int64, req model.UpdateBlogPostRequest) (*model.BlogPost, error)

	// DeletePost removes one post by id.
	DeletePost(ctx context.Context, id int64) error

	// Counts returns the total and published post counts.
	Counts(ctx context.Context) (total int, published int, err error)
}
