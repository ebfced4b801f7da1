package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateBlogPostRequest is the admin payload for a new post. Slug, meta
// fields, author and read time are optional; the service fills defaults.
type CreateBlogPostRequest struct {
	Title           string   `json:"title" binding:"required"`
	Excerpt         string   `json:"excerpt" binding:"required"`
	Content         string   `json:"content" binding:"required"`
	Status          string   `json:"status"`
	AuthorName      string   `json:"author_name"`
	Slug            string   `json:"slug"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	FeaturedImage   string   `json:"featured_image"`
	ReadTime        int      `json:"read_time"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
}

func (r CreateBlogPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Status,
			validation.In(StatusDraft, StatusPublished).
				Error("status must be one of: draft, published"),
		),
		validation.Field(&r.ReadTime,
			validation.Min(0).Error("read_time cannot be negative"),
		),
		validation.Field(&r.FeaturedImage,
			validation.When(r.FeaturedImage != "", is.URL.Error("featured_image must be a valid URL")),
		),
	)
}

// UpdateBlogPostRequest uses the same field set and rules as create;
// the target is identified by the path id.
type UpdateBlogPostRequest = CreateBlogPostRequest

// ListBlogPostsQuery carries the public list filters.
type ListBlogPostsQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// BlogPostListResponse is a resolved, filtered post list. Source reports
// whether the items came from the store or the compiled-in fallback set.
type BlogPostListResponse struct {
	Source string     `json:"source"`
	Posts  []BlogPost `json:"posts"`
	Total  int        `json:"total"`
}
