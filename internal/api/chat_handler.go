package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/models"
)

// ChatHandler handles chat-assistant endpoints.
type ChatHandler struct {
	chatService core.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(cs core.ChatService) *ChatHandler {
	return &ChatHandler{chatService: cs}
}

// Send handles POST /api/v1/chats.
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing input or history", Details: err.Error()})
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), userID, req)
	if err != nil {
		// The reply was computed even though the write failed; return it.
		if errors.Is(err, core.ErrStorageFailed) && msg != nil {
			c.JSON(http.StatusOK, ChatResponse{Response: msg.AIMessage})
			return
		}
		respondServiceError(c, "Failed to process message", err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: msg.AIMessage})
}

// History handles GET /api/v1/chats, newest first. An empty history returns
// an empty array, not a 404.
func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	msgs, err := h.chatService.History(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, "Failed to retrieve chat history", err)
		return
	}
	if msgs == nil {
		msgs = []*models.ChatMessage{}
	}

	c.JSON(http.StatusOK, msgs)
}

// Delete handles DELETE /api/v1/chats/:chatId. Only the owner may delete;
// a mismatch returns 403 and leaves the record intact.
func (h *ChatHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.chatService.Delete(c.Request.Context(), userID, c.Param("chatId")); err != nil {
		respondServiceError(c, "Failed to delete chat", err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Chat deleted successfully"})
}
