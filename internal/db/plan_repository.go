package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/fitplanner-backend/internal/models"
)

// firestorePlanRepository implements the PlanRepository interface using
// Firestore. Workout and meal plans share the document shape, so one
// repository serves both collections.
type firestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository creates a new instance of firestorePlanRepository.
func NewFirestorePlanRepository(client *firestore.Client) PlanRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PlanRepository.")
	}
	return &firestorePlanRepository{client: client}
}

// Create appends a new plan document with an auto-generated ID. Plans are
// never updated in place; every generation is a new document.
func (r *firestorePlanRepository) Create(ctx context.Context, kind models.PlanKind, plan *models.Plan) (string, error) {
	if plan.UserID == "" {
		return "", errors.New("plan userId cannot be empty for Create operation")
	}
	docRef := r.client.Collection(kind.Collection()).NewDoc()
	plan.ID = docRef.ID

	if _, err := docRef.Create(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to create %s plan: %w", kind, err)
	}
	return docRef.ID, nil
}

// GetLatestByUserID returns the single most recent plan for the user,
// ordered by createdAt descending and limited to one. Every call re-queries
// the store; there is no caching.
func (r *firestorePlanRepository) GetLatestByUserID(ctx context.Context, kind models.PlanKind, userID string) (*models.Plan, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetLatestByUserID operation")
	}

	iter := r.client.Collection(kind.Collection()).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("no %s plan found for user '%s': %w", kind, userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest %s plan for user '%s': %w", kind, userID, err)
	}

	var plan models.Plan
	if err := doc.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode %s plan data (ID: %s): %w", kind, doc.Ref.ID, err)
	}
	plan.ID = doc.Ref.ID

	return &plan, nil
}

// DeleteByUserID removes every plan document belonging to the user and
// returns the number deleted. Used by the user-deletion cascade.
func (r *firestorePlanRepository) DeleteByUserID(ctx context.Context, kind models.PlanKind, userID string) (int, error) {
	if userID == "" {
		return 0, errors.New("userID cannot be empty for DeleteByUserID operation")
	}

	iter := r.client.Collection(kind.Collection()).
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
			return deleted, fmt.Errorf("failed to iterate %s plans for user '%s': %w", kind, userID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete %s plan '%s': %w", kind, doc.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}
