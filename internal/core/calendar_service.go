package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/models"
)

// calendarService implements the CalendarService interface.
type calendarService struct {
	calendarRepo db.CalendarRepository
}

// NewCalendarService creates a new CalendarService instance.
func NewCalendarService(calendarRepo db.CalendarRepository) CalendarService {
	return &calendarService{calendarRepo: calendarRepo}
}

// Create schedules a new workout on the caller's calendar.
func (s *calendarService) Create(ctx context.Context, userID string, req models.CreateCalendarRequest) (*models.CalendarEntry, error) {
	entry := &models.CalendarEntry{
		UserID:    userID,
		Date:      req.Date,
		Workout:   req.Workout,
		Notes:     req.Notes,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := s.calendarRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: calendar entry for user '%s': %v", ErrStorageFailed, userID, err)
	}
	return entry, nil
}

// List returns the caller's calendar entries ordered by date ascending.
func (s *calendarService) List(ctx context.Context, userID string) ([]*models.CalendarEntry, error) {
	entries, err := s.calendarRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar entries for user '%s': %w", userID, err)
	}
	return entries, nil
}

// getOwned fetches an entry and verifies the caller owns it.
func (s *calendarService) getOwned(ctx context.Context, userID, entryID string) (*models.CalendarEntry, error) {
	entry, err := s.calendarRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: calendar entry '%s'", ErrRecordNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to get calendar entry '%s': %w", entryID, err)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("%w: calendar entry '%s'", ErrForbidden, entryID)
	}
	return entry, nil
}

// Update applies the provided fields to an owned calendar entry.
func (s *calendarService) Update(ctx context.Context, userID, entryID string, req models.UpdateCalendarRequest) (*models.CalendarEntry, error) {
	entry, err := s.getOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Workout != nil {
		entry.Workout = *req.Workout
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.calendarRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: calendar entry '%s': %v", ErrStorageFailed, entryID, err)
	}
	return entry, nil
}

// Delete removes an owned calendar entry.
func (s *calendarService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.getOwned(ctx, userID, entryID); err != nil {
		return err
	}
	if err := s.calendarRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("%w: calendar entry '%s': %v", ErrStorageFailed, entryID, err)
	}
	return nil
}
