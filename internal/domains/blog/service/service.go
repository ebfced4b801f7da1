package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/content"
	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/repository"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type blogService struct {
	repo repository.BlogPostRepository
}

func NewBlogService(repo repository.BlogPostRepository) ServiceInterface {
	return &blogService{repo: repo}
}

// =====================================================
// PUBLIC READS
// =====================================================

func (s *blogService) ListPublic(ctx context.Context, query model.ListBlogPostsQuery) (*model.BlogPostListResponse, error) {
	remote, err := s.repo.List(ctx, repository.ListOptions{
		Status:  model.StatusPublished,
		OrderBy: "published_at",
	})
	if err != nil {
		// A failed read degrades to the seed set on the public page; the
		// error is logged, not surfaced to visitors.
		logger.Error("blog post list read failed, serving fallback", err)
		remote = nil
	}

	resolved := content.Resolve(remote, model.Seed())

	filtered := content.Filter(resolved.Items, func(p model.BlogPost) bool {
		return p.MatchesCategory(query.Category) && p.MatchesSearch(query.Search)
	})

	return &model.BlogPostListResponse{
		Source: string(resolved.Source),
		Posts:  filtered,
		Total:  len(filtered),
	}, nil
}

func (s *blogService) GetPublished(ctx context.Context, id int64) (*model.BlogPost, error) {
	post, err := s.repo.GetPublishedByID(ctx, id)
	if err == nil {
		return post, nil
	}

	if !errors.Is(err, model.ErrBlogPostNotFound) {
		logger.Error("blog post read failed, trying fallback", err)
	}

	if seed, ok := model.SeedByID(id); ok {
		return seed, nil
	}
	return nil, model.ErrBlogPostNotFound
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *blogService) ListAdmin(ctx context.Context) ([]model.BlogPost, error) {
	posts, err := s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at"})
	if err != nil {
		return nil, fmt.Errorf("failed to load blog posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, id int64) (*model.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) CreatePost(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error) {
	// Required fields are checked before any write is attempted.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &model.BlogPost{
		Title:           req.Title,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Status:          req.Status,
		AuthorName:      req.AuthorName,
		Slug:            req.Slug,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		FeaturedImage:   req.FeaturedImage,
		ReadTime:        req.ReadTime,
		Category:        req.Category,
		Tags:            req.Tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	applyDerivedFields(post)

	if post.Status == "" {
		post.Status = model.StatusDraft
	}
	if post.Status == model.StatusPublished {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id int64, req model.UpdateBlogPostRequest) (*model.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasPublished := existing.IsPublished()

	existing.Title = req.Title
	existing.Excerpt = req.Excerpt
	existing.Content = req.Content
	existing.Status = req.Status
	existing.AuthorName = req.AuthorName
	existing.Slug = req.Slug
	existing.MetaTitle = req.MetaTitle
	existing.MetaDescription = req.MetaDescription
	existing.FeaturedImage = req.FeaturedImage
	existing.ReadTime = req.ReadTime
	existing.Category = req.Category
	existing.Tags = req.Tags
	existing.UpdatedAt = time.Now()

	applyDerivedFields(existing)

	if existing.Status == "" {
		existing.Status = model.StatusDraft
	}

	// The publish date marks the first transition into published. Re-saving
	// an already published post keeps its original date; moving a post back
	// to draft clears it so a later re-publish stamps afresh.
	switch {
	case existing.IsPublished() && !wasPublished:
		now := time.Now()
		existing.PublishedAt = &now
	case !existing.IsPublished():
		existing.PublishedAt = nil
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *blogService) DeletePost(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *blogService) Counts(ctx context.Context) (int, int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, 0, err
	}

	published, err := s.repo.CountPublished(ctx)
	if err != nil {
		return 0, 0, err
	}

	return total, published, nil
}

// applyDerivedFields fills the optional write fields: slug from title when
// blank, meta fields from title/excerpt, named display defaults.
func applyDerivedFields(post *model.BlogPost) {
	if post.Slug == "" {
		post.Slug = utils.GenerateSlug(post.Title)
	}
	if post.MetaTitle == "" {
		post.MetaTitle = post.Title
	}
	if post.MetaDescription == "" {
		post.MetaDescription = post.Excerpt
	}
	if post.AuthorName == "" {
		post.AuthorName = model.DefaultAuthorName
	}
	if post.ReadTime == 0 {
		post.ReadTime = model.DefaultReadTime
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.FeaturedImage == "" {
		post.FeaturedImage = model.PlaceholderImageURL
	}
}
