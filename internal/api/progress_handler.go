package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/models"
)

// ProgressHandler handles progress-log endpoints.
type ProgressHandler struct {
	progressService core.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(ps core.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: ps}
}

// Create handles POST /api/v1/progress.
func (h *ProgressHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid progress payload", Details: err.Error()})
		return
	}

	logEntry, err := h.progressService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, "Failed to save progress", err)
		return
	}

	c.JSON(http.StatusCreated, logEntry)
}

// List handles GET /api/v1/progress, returning the caller's logs ordered by
// date ascending.
func (h *ProgressHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.progressService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "Failed to fetch progress logs", err)
		return
	}
	if logs == nil {
		logs = []*models.ProgressLog{}
	}

	c.JSON(http.StatusOK, logs)
}

// Update handles PUT /api/v1/progress/:id. Ownership is enforced in the
// service; a mismatch returns 403.
func (h *ProgressHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid progress payload", Details: err.Error()})
		return
	}

	logEntry, err := h.progressService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, "Failed to update progress", err)
		return
	}

	c.JSON(http.StatusOK, logEntry)
}

// Delete handles DELETE /api/v1/progress/:id.
func (h *ProgressHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.progressService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, "Failed to delete progress", err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Progress deleted"})
}
