package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/example/fitplanner-backend/internal/models"
)

const chatsCollection = "chats"

// firestoreChatRepository implements the ChatRepository interface using Firestore.
type firestoreChatRepository struct {
	client *firestore.Client
}

// NewFirestoreChatRepository creates a new instance of firestoreChatRepository.
func NewFirestoreChatRepository(client *firestore.Client) ChatRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ChatRepository.")
	}
	return &firestoreChatRepository{client: client}
}

// Create appends one chat turn with an auto-generated ID.
func (r *firestoreChatRepository) Create(ctx context.Context, msg *models.ChatMessage) (string, error) {
	if msg.UserID == "" {
		return "", errors.New("chat message userId cannot be empty for Create operation")
	}
	docRef := r.client.Collection(chatsCollection).NewDoc()
	msg.ID = docRef.ID

	if _, err := docRef.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to create chat message: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a chat message by its document ID. The service layer
// uses this for the ownership check before deletion.
func (r *firestoreChatRepository) GetByID(ctx context.Context, chatID string) (*models.ChatMessage, error) {
	if chatID == "" {
		return nil, errors.New("chatID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(chatsCollection).Doc(chatID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("chat message '%s' not found: %w", chatID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get chat message '%s': %w", chatID, err)
	}

	var msg models.ChatMessage
	if err := docSnap.DataTo(&msg); err != nil {
		return nil, fmt.Errorf("failed to decode chat message '%s': %w", chatID, err)
	}
	msg.ID = docSnap.Ref.ID

	return &msg, nil
}

// GetByUserID retrieves the user's chat history, newest first.
func (r *firestoreChatRepository) GetByUserID(ctx context.Context, userID string) ([]*models.ChatMessage, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(chatsCollection).
		Where("userId", "==", userID).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var msgs []*models.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate chat messages for user '%s': %w", userID, err)
		}

		var msg models.ChatMessage
		if err := doc.DataTo(&msg); err != nil {
			log.Printf("Error decoding chat message (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		msg.ID = doc.Ref.ID
		msgs = append(msgs, &msg)
	}

	return msgs, nil
}

// Delete removes a chat message document.
func (r *firestoreChatRepository) Delete(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.New("chatID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(chatsCollection).Doc(chatID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete chat message '%s': %w", chatID, err)
	}
	return nil
}

// DeleteByUserID removes the user's entire chat history.
func (r *firestoreChatRepository) DeleteByUserID(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, errors.New("userID cannot be empty for DeleteByUserID operation")
	}

	iter := r.client.Collection(chatsCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to iterate chat messages for user '%s': %w", userID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete chat message '%s': %w", doc.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}
