package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/models"
)

// ContactHandler relays contact-form submissions by email.
type ContactHandler struct {
	contactService core.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(cs core.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// Send handles POST /api/v1/contact.
func (h *ContactHandler) Send(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid contact payload", Details: err.Error()})
		return
	}

	if err := h.contactService.Send(c.Request.Context(), req); err != nil {
		log.Printf("Contact send failed from '%s': %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Message sent"})
}
