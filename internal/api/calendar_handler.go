package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/models"
)

// CalendarHandler handles workout-calendar endpoints.
type CalendarHandler struct {
	calendarService core.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(cs core.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: cs}
}

// Create handles POST /api/v1/calendar.
func (h *CalendarHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid calendar payload", Details: err.Error()})
		return
	}

	entry, err := h.calendarService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, "Failed to save workout", err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List handles GET /api/v1/calendar.
func (h *CalendarHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.calendarService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "Failed to fetch workouts", err)
		return
	}
	if entries == nil {
		entries = []*models.CalendarEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// Update handles PUT /api/v1/calendar/:id.
func (h *CalendarHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid calendar payload", Details: err.Error()})
		return
	}

	entry, err := h.calendarService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, "Failed to update workout", err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/v1/calendar/:id.
func (h *CalendarHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.calendarService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, "Failed to delete workout", err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Workout deleted"})
}
