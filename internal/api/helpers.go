package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
)

// currentUserID returns the authenticated caller's UID from the Gin context
// (populated by the auth middleware). The bool is false when the middleware
// did not run or the value is malformed; the helper has already written the
// error response in that case.
func currentUserID(c *gin.Context) (string, bool) {
	rawUserID, exists := c.Get("userID")
	if !exists {
		log.Println("Handler error: userID not found in context. Auth middleware might not have run.")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: user ID not found in context"})
		return "", false
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		log.Printf("Handler error: userID in context is not a valid string. Value: %v", rawUserID)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid user ID in context"})
		return "", false
	}
	return userID, true
}

// statusForServiceError maps core sentinel errors to HTTP status codes.
// Anything unrecognized is an internal error.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrPlanNotFound),
		errors.Is(err, core.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the mapped error response.
func respondServiceError(c *gin.Context, message string, err error) {
	c.JSON(statusForServiceError(err), ErrorResponse{Error: message, Details: err.Error()})
}
