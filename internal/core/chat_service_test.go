package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/fitplanner-backend/internal/cohere"
	"github.com/example/fitplanner-backend/internal/models"
)

func TestChatSend_GeneratesAndPersists(t *testing.T) {
	chatRepo := newFakeChatRepo()
	gen := &fakeGenerator{reply: "Bend your knees and keep your back straight."}
	svc := NewChatService(chatRepo, gen).(*chatService)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	msg, err := svc.Send(context.Background(), "uid-1", models.ChatRequest{
		Input:   "how do I squat?",
		History: "User: hi\nAI: hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "how do I squat?", msg.UserMessage)
	assert.Equal(t, "Bend your knees and keep your back straight.", msg.AIMessage)
	assert.NotEmpty(t, msg.ID)
	assert.Len(t, chatRepo.msgs, 1)

	assert.Equal(t, "User: hi\nAI: hello\nUser: how do I squat?\nAI:", gen.lastPrompt)
	assert.Equal(t, cohere.ChatParams, gen.lastParams)
}

func TestChatSend_EmptyReplyIsAnError(t *testing.T) {
	chatRepo := newFakeChatRepo()
	svc := NewChatService(chatRepo, &fakeGenerator{reply: ""})

	_, err := svc.Send(context.Background(), "uid-1", models.ChatRequest{Input: "hi", History: ""})

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Empty(t, chatRepo.msgs)
}

func TestChatSend_StorageFailureStillReturnsReply(t *testing.T) {
	chatRepo := newFakeChatRepo()
	chatRepo.createErr = errors.New("firestore unavailable")
	svc := NewChatService(chatRepo, &fakeGenerator{reply: "sure thing"})

	msg, err := svc.Send(context.Background(), "uid-1", models.ChatRequest{Input: "hi", History: ""})

	require.ErrorIs(t, err, ErrStorageFailed)
	require.NotNil(t, msg)
	assert.Equal(t, "sure thing", msg.AIMessage)
}

func TestChatHistory_NewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	chatRepo := newFakeChatRepo(
		&models.ChatMessage{ID: "chat-a", UserID: "uid-1", AIMessage: "older", Timestamp: base},
		&models.ChatMessage{ID: "chat-b", UserID: "uid-1", AIMessage: "newer", Timestamp: base.Add(time.Hour)},
		&models.ChatMessage{ID: "chat-c", UserID: "uid-2", AIMessage: "other user", Timestamp: base},
	)
	svc := NewChatService(chatRepo, &fakeGenerator{})

	msgs, err := svc.History(context.Background(), "uid-1")

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "newer", msgs[0].AIMessage)
	assert.Equal(t, "older", msgs[1].AIMessage)
}

func TestChatDelete_OwnerOnly(t *testing.T) {
	chatRepo := newFakeChatRepo(
		&models.ChatMessage{ID: "chat-a", UserID: "uid-1"},
	)
	svc := NewChatService(chatRepo, &fakeGenerator{})

	err := svc.Delete(context.Background(), "uid-2", "chat-a")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, chatRepo.msgs, 1, "record must stay intact on ownership mismatch")

	err = svc.Delete(context.Background(), "uid-1", "chat-a")
	require.NoError(t, err)
	assert.Empty(t, chatRepo.msgs)
}

func TestChatDelete_UnknownID(t *testing.T) {
	svc := NewChatService(newFakeChatRepo(), &fakeGenerator{})

	err := svc.Delete(context.Background(), "uid-1", "missing")

	assert.ErrorIs(t, err, ErrRecordNotFound)
}
