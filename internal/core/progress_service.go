package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/models"
)

// progressService implements the ProgressService interface.
type progressService struct {
	progressRepo db.ProgressRepository
}

// NewProgressService creates a new ProgressService instance.
func NewProgressService(progressRepo db.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

// Create saves a new progress log owned by the caller.
func (s *progressService) Create(ctx context.Context, userID string, req models.CreateProgressRequest) (*models.ProgressLog, error) {
	logEntry := &models.ProgressLog{
		UserID:    userID,
		Date:      req.Date,
		Weight:    req.Weight,
		Note:      req.Note,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := s.progressRepo.Create(ctx, logEntry); err != nil {
		return nil, fmt.Errorf("%w: progress log for user '%s': %v", ErrStorageFailed, userID, err)
	}
	return logEntry, nil
}

// List returns the caller's progress logs ordered by date ascending.
func (s *progressService) List(ctx context.Context, userID string) ([]*models.ProgressLog, error) {
	logs, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress logs for user '%s': %w", userID, err)
	}
	return logs, nil
}

// getOwned fetches a log and verifies the caller owns it.
func (s *progressService) getOwned(ctx context.Context, userID, logID string) (*models.ProgressLog, error) {
	logEntry, err := s.progressRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: progress log '%s'", ErrRecordNotFound, logID)
		}
		return nil, fmt.Errorf("failed to get progress log '%s': %w", logID, err)
	}
	if logEntry.UserID != userID {
		return nil, fmt.Errorf("%w: progress log '%s'", ErrForbidden, logID)
	}
	return logEntry, nil
}

// Update applies the provided fields to an owned progress log.
func (s *progressService) Update(ctx context.Context, userID, logID string, req models.UpdateProgressRequest) (*models.ProgressLog, error) {
	logEntry, err := s.getOwned(ctx, userID, logID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		logEntry.Date = *req.Date
	}
	if req.Weight != nil {
		logEntry.Weight = *req.Weight
	}
	if req.Note != nil {
		logEntry.Note = *req.Note
	}
	logEntry.UpdatedAt = time.Now().UTC()

	if err := s.progressRepo.Update(ctx, logEntry); err != nil {
		return nil, fmt.Errorf("%w: progress log '%s': %v", ErrStorageFailed, logID, err)
	}
	return logEntry, nil
}

// Delete removes an owned progress log.
func (s *progressService) Delete(ctx context.Context, userID, logID string) error {
	if _, err := s.getOwned(ctx, userID, logID); err != nil {
		return err
	}
	if err := s.progressRepo.Delete(ctx, logID); err != nil {
		return fmt.Errorf("%w: progress log '%s': %v", ErrStorageFailed, logID, err)
	}
	return nil
}
