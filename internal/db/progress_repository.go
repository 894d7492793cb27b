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

const progressCollection = "progressLogs"

// firestoreProgressRepository implements the ProgressRepository interface
// using Firestore.
type firestoreProgressRepository struct {
	client *firestore.Client
}

// NewFirestoreProgressRepository creates a new instance of firestoreProgressRepository.
func NewFirestoreProgressRepository(client *firestore.Client) ProgressRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProgressRepository.")
	}
	return &firestoreProgressRepository{client: client}
}

// Create adds a new progress log document with an auto-generated ID.
func (r *firestoreProgressRepository) Create(ctx context.Context, logEntry *models.ProgressLog) (string, error) {
	if logEntry.UserID == "" {
		return "", errors.New("progress log userId cannot be empty for Create operation")
	}
	docRef := r.client.Collection(progressCollection).NewDoc()
	logEntry.ID = docRef.ID

	if _, err := docRef.Create(ctx, logEntry); err != nil {
		return "", fmt.Errorf("failed to create progress log: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a progress log by its document ID.
func (r *firestoreProgressRepository) GetByID(ctx context.Context, logID string) (*models.ProgressLog, error) {
	if logID == "" {
		return nil, errors.New("logID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(progressCollection).Doc(logID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("progress log '%s' not found: %w", logID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get progress log '%s': %w", logID, err)
	}

	var logEntry models.ProgressLog
	if err := docSnap.DataTo(&logEntry); err != nil {
		return nil, fmt.Errorf("failed to decode progress log '%s': %w", logID, err)
	}
	logEntry.ID = docSnap.Ref.ID

	return &logEntry, nil
}

// GetByUserID retrieves all progress logs for a user ordered by date
// ascending, the order the progress chart consumes.
func (r *firestoreProgressRepository) GetByUserID(ctx context.Context, userID string) ([]*models.ProgressLog, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(progressCollection).
		Where("userId", "==", userID).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var logs []*models.ProgressLog
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate progress logs for user '%s': %w", userID, err)
		}

		var logEntry models.ProgressLog
		if err := doc.DataTo(&logEntry); err != nil {
			log.Printf("Error decoding progress log (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		logEntry.ID = doc.Ref.ID
		logs = append(logs, &logEntry)
	}

	return logs, nil
}

// Update modifies an existing progress log. MergeAll preserves untouched fields.
func (r *firestoreProgressRepository) Update(ctx context.Context, logEntry *models.ProgressLog) error {
	if logEntry.ID == "" {
		return errors.New("progress log ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(progressCollection).Doc(logEntry.ID).Set(ctx, logEntry, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update progress log '%s': %w", logEntry.ID, err)
	}
	return nil
}

// Delete removes a progress log document.
func (r *firestoreProgressRepository) Delete(ctx context.Context, logID string) error {
	if logID == "" {
		return errors.New("logID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(progressCollection).Doc(logID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete progress log '%s': %w", logID, err)
	}
	return nil
}

// DeleteByUserID removes every progress log belonging to the user.
func (r *firestoreProgressRepository) DeleteByUserID(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, errors.New("userID cannot be empty for DeleteByUserID operation")
	}

	iter := r.client.Collection(progressCollection).
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
			return deleted, fmt.Errorf("failed to iterate progress logs for user '%s': %w", userID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete progress log '%s': %w", doc.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}
