package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/shared/response"
)

type ContactHandler struct {
	contactService service.ServiceInterface
}

func NewContactHandler(contactService service.ServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// SubmitMessage accepts a contact form submission. The route carries the
// rate limit middleware; by the time this runs the sender is within quota.
// POST /api/v1/contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req model.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": message.ID})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListMessages lists the inbox, newest first.
// GET /api/v1/admin/contact-messages
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, messages)
}

// MarkMessageRead flips a message to read.
// POST /api/v1/admin/contact-messages/:id/read
func (h *ContactHandler) MarkMessageRead(c *gin.Context) {
	message, err := h.contactService.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, message)
}

func (h *ContactHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrMessageNotFound):
		response.NotFound(c, "Contact message not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
}
