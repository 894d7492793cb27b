package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/models"
)

// UserHandler handles account and profile endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// Register handles POST /api/v1/users. This is the only public write
// endpoint: it creates the Firebase Auth account and the profile document.
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid registration payload", Details: err.Error()})
		return
	}
	if req.DOB != "" {
		if _, err := time.Parse("2006-01-02", req.DOB); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Date of birth must be a valid date (YYYY-MM-DD)"})
			return
		}
	}
	if req.Height <= 0 || req.Weight <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Height and weight must be positive numbers"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		log.Printf("Register error for '%s': %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user", Details: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetProfile handles GET /api/v1/users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "Failed to retrieve user profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid profile payload", Details: err.Error()})
		return
	}
	if req.DOB != nil && *req.DOB != "" {
		if _, err := time.Parse("2006-01-02", *req.DOB); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Date of birth must be a valid date (YYYY-MM-DD)"})
			return
		}
	}

	user, err := h.userService.Update(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, "Failed to update user profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteAccount handles DELETE /api/v1/users/me. Deletion cascades to the
// user's generated plans, and to the remaining collections when the cascade
// config is enabled.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		respondServiceError(c, "Failed to delete user", err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted"})
}
