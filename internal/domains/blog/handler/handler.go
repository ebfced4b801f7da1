package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/shared/response"
)

type BlogHandler struct {
	blogService service.ServiceInterface
}

func NewBlogHandler(blogService service.ServiceInterface) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPosts serves the public blog grid, published posts only.
// GET /api/v1/blog/posts?category=&search=
func (h *BlogHandler) ListPosts(c *gin.Context) {
	var query model.ListBlogPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.blogService.ListPublic(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to load blog posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Posts, &response.Meta{
		Source: resp.Source,
		Total:  resp.Total,
	})
}

// GetPost serves one published post. An id that does not resolve to a
// published post is a terminal 404.
// GET /api/v1/blog/posts/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Blog post not found")
		return
	}

	post, err := h.blogService.GetPublished(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "Blog post not found")
		return
	}

	response.Success(c, http.StatusOK, post)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListAdminPosts lists every stored post regardless of status.
// GET /api/v1/admin/blog-posts
func (h *BlogHandler) ListAdminPosts(c *gin.Context) {
	posts, err := h.blogService.ListAdmin(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// GetAdminPost gets one post by id, drafts included.
// GET /api/v1/admin/blog-posts/:id
func (h *BlogHandler) GetAdminPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.blogService.GetPost(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// CreatePost creates a new post.
// POST /api/v1/admin/blog-posts
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req model.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// UpdatePost rewrites a post by id.
// PUT /api/v1/admin/blog-posts/:id
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req model.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.blogService.UpdatePost(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// DeletePost removes a post by id.
// DELETE /api/v1/admin/blog-posts/:id
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.blogService.DeletePost(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *BlogHandler) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid blog post id")
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP responses. Store messages pass
// through verbatim so the dashboard can show them.
func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrBlogPostNotFound):
		response.NotFound(c, "Blog post not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
}
