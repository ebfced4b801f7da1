package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/response"
)

type ProjectHandler struct {
	projectService service.ServiceInterface
}

func NewProjectHandler(projectService service.ServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListProjects serves the public portfolio grid.
// GET /api/v1/projects?category=&search=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var query model.ListProjectsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.projectService.ListPublic(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to load projects")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp.Projects, &response.Meta{
		Source: resp.Source,
		Total:  resp.Total,
	})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListAdminProjects lists every stored project, newest first.
// GET /api/v1/admin/projects
func (h *ProjectHandler) ListAdminProjects(c *gin.Context) {
	projects, err := h.projectService.ListAdmin(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// CreateProject creates a new project.
// POST /api/v1/admin/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, project)
}

// UpdateProject rewrites a project by id.
// PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req model.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// DeleteProject removes a project by id.
// DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// handleError maps domain errors to HTTP responses. Store messages pass
// through verbatim so the dashboard can show them.
func (h *ProjectHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
}
