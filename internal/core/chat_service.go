package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/example/fitplanner-backend/internal/cohere"
	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/models"
	"github.com/example/fitplanner-backend/internal/planner"
)

// chatService implements the ChatService interface.
type chatService struct {
	chatRepo  db.ChatRepository
	generator Generator
	now       func() time.Time
}

// NewChatService creates a new ChatService instance.
func NewChatService(chatRepo db.ChatRepository, generator Generator) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		generator: generator,
		now:       time.Now,
	}
}

// Send runs one assistant turn. The client keeps the transcript; the prompt
// is the transcript plus the new message with stop sequences cutting the
// completion off at the next speaker cue. An empty completion is an error
// here, unlike plan generation where a fallback string is substituted.
func (s *chatService) Send(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatMessage, error) {
	prompt := planner.ChatPrompt(req.History, req.Input)

	reply, err := s.generator.Generate(ctx, prompt, cohere.ChatParams)
	if err != nil {
		return nil, fmt.Errorf("%w: chat turn for user '%s': %v", ErrGenerationFailed, userID, err)
	}
	if reply == "" {
		return nil, fmt.Errorf("%w: no AI response received for user '%s'", ErrGenerationFailed, userID)
	}

	msg := &models.ChatMessage{
		UserID:      userID,
		UserMessage: req.Input,
		AIMessage:   reply,
		Timestamp:   s.now().UTC(),
	}

	if _, err := s.chatRepo.Create(ctx, msg); err != nil {
		// Same posture as plan persistence: the reply is already computed,
		// so surface the write failure without discarding it.
		log.Printf("Send: failed to persist chat turn for user '%s': %v", userID, err)
		return msg, fmt.Errorf("%w: chat turn for user '%s': %v", ErrStorageFailed, userID, err)
	}

	return msg, nil
}

// History returns the caller's chat messages, newest first. An empty history
// is a valid result, not an error.
func (s *chatService) History(ctx context.Context, userID string) ([]*models.ChatMessage, error) {
	msgs, err := s.chatRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history for user '%s': %w", userID, err)
	}
	return msgs, nil
}

// Delete removes one chat turn after verifying ownership. A mismatch leaves
// the record intact.
func (s *chatService) Delete(ctx context.Context, userID, chatID string) error {
	msg, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: chat message '%s'", ErrRecordNotFound, chatID)
		}
		return fmt.Errorf("failed to get chat message '%s': %w", chatID, err)
	}
	if msg.UserID != userID {
		return fmt.Errorf("%w: chat message '%s'", ErrForbidden, chatID)
	}

	if err := s.chatRepo.Delete(ctx, chatID); err != nil {
		return fmt.Errorf("%w: chat message '%s': %v", ErrStorageFailed, chatID, err)
	}
	return nil
}
