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

const calendarCollection = "workoutCalendar"

// firestoreCalendarRepository implements the CalendarRepository interface
// using Firestore.
type firestoreCalendarRepository struct {
	client *firestore.Client
}

// NewFirestoreCalendarRepository creates a new instance of firestoreCalendarRepository.
func NewFirestoreCalendarRepository(client *firestore.Client) CalendarRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CalendarRepository.")
	}
	return &firestoreCalendarRepository{client: client}
}

// Create adds a new calendar entry with an auto-generated ID.
func (r *firestoreCalendarRepository) Create(ctx context.Context, entry *models.CalendarEntry) (string, error) {
	if entry.UserID == "" {
		return "", errors.New("calendar entry userId cannot be empty for Create operation")
	}
	docRef := r.client.Collection(calendarCollection).NewDoc()
	entry.ID = docRef.ID

	if _, err := docRef.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to create calendar entry: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a calendar entry by its document ID.
func (r *firestoreCalendarRepository) GetByID(ctx context.Context, entryID string) (*models.CalendarEntry, error) {
	if entryID == "" {
		return nil, errors.New("entryID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(calendarCollection).Doc(entryID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("calendar entry '%s' not found: %w", entryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get calendar entry '%s': %w", entryID, err)
	}

	var entry models.CalendarEntry
	if err := docSnap.DataTo(&entry); err != nil {
		return nil, fmt.Errorf("failed to decode calendar entry '%s': %w", entryID, err)
	}
	entry.ID = docSnap.Ref.ID

	return &entry, nil
}

// GetByUserID retrieves all calendar entries for a user ordered by date ascending.
func (r *firestoreCalendarRepository) GetByUserID(ctx context.Context, userID string) ([]*models.CalendarEntry, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(calendarCollection).
		Where("userId", "==", userID).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var entries []*models.CalendarEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate calendar entries for user '%s': %w", userID, err)
		}

		var entry models.CalendarEntry
		if err := doc.DataTo(&entry); err != nil {
			log.Printf("Error decoding calendar entry (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, &entry)
	}

	return entries, nil
}

// Update modifies an existing calendar entry. MergeAll preserves untouched fields.
func (r *firestoreCalendarRepository) Update(ctx context.Context, entry *models.CalendarEntry) error {
	if entry.ID == "" {
		return errors.New("calendar entry ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(calendarCollection).Doc(entry.ID).Set(ctx, entry, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update calendar entry '%s': %w", entry.ID, err)
	}
	return nil
}

// Delete removes a calendar entry document.
func (r *firestoreCalendarRepository) Delete(ctx context.Context, entryID string) error {
	if entryID == "" {
		return errors.New("entryID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(calendarCollection).Doc(entryID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete calendar entry '%s': %w", entryID, err)
	}
	return nil
}

// DeleteByUserID removes every calendar entry belonging to the user.
func (r *firestoreCalendarRepository) DeleteByUserID(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, errors.New("userID cannot be empty for DeleteByUserID operation")
	}

	iter := r.client.Collection(calendarCollection).
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
			return deleted, fmt.Errorf("failed to iterate calendar entries for user '%s': %w", userID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete calendar entry '%s': %w", doc.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}
