package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	blogservice "portfolio-backend/internal/domains/blog/service"
	contactservice "portfolio-backend/internal/domains/contact/service"
	projectservice "portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/response"
)

// Summary is the admin dashboard header: one count per collection plus the
// unread inbox size.
type Summary struct {
	Projects       int `json:"projects"`
	BlogPosts      int `json:"blog_posts"`
	PublishedPosts int `json:"published_posts"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
}

type DashboardHandler struct {
	projectService projectservice.ServiceInterface
	blogService    blogservice.ServiceInterface
	contactService contactservice.ServiceInterface
}

func NewDashboardHandler(
	projectService projectservice.ServiceInterface,
	blogService blogservice.ServiceInterface,
	contactService contactservice.ServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		projectService: projectService,
		blogService:    blogService,
		contactService: contactService,
	}
}

// GetSummary aggregates the collection counts for the admin landing page.
// GET /api/v1/admin/dashboard
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.projectService.Count(ctx)
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	posts, published, err := h.blogService.Counts(ctx)
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	messages, unread, err := h.contactService.Counts(ctx)
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, Summary{
		Projects:       projects,
		BlogPosts:      posts,
		PublishedPosts: published,
		Messages:       messages,
		UnreadMessages: unread,
	})
}
