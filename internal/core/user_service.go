package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/models"
)

// AuthAccounts is the slice of the Firebase Auth client the user service
// needs. *auth.Client satisfies it.
type AuthAccounts interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
}

// userService implements the UserService interface.
type userService struct {
	authClient   AuthAccounts
	userRepo     db.UserRepository
	planRepo     db.PlanRepository
	progressRepo db.ProgressRepository
	calendarRepo db.CalendarRepository
	chatRepo     db.ChatRepository
	cascadeAll   bool
}

// NewUserService creates a new UserService instance. cascadeAll extends the
// user-deletion cascade beyond workout/meal plans to progress logs, calendar
// entries and chat history.
func NewUserService(
	authClient AuthAccounts,
	userRepo db.UserRepository,
	planRepo db.PlanRepository,
	progressRepo db.ProgressRepository,
	calendarRepo db.CalendarRepository,
	chatRepo db.ChatRepository,
	cascadeAll bool,
) UserService {
	return &userService{
		authClient:   authClient,
		userRepo:     userRepo,
		planRepo:     planRepo,
		progressRepo: progressRepo,
		calendarRepo: calendarRepo,
		chatRepo:     chatRepo,
		cascadeAll:   cascadeAll,
	}
}

// Register creates the Firebase Auth account first, then stores the profile
// document under the returned UID. The UID doubles as the profile document ID.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	record, err := s.authClient.CreateUser(ctx, (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.FirstName+" "+req.LastName))
	if err != nil {
		return nil, fmt.Errorf("failed to create auth account for '%s': %w", req.Email, err)
	}

	user := &models.User{
		ID:        record.UID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		DOB:       req.DOB,
		Height:    req.Height,
		Weight:    req.Weight,
		Goal:      req.Goal,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The auth account exists but the profile write failed. Best effort
		// rollback so the email is not left claimed by a half-registered user.
		if delErr := s.authClient.DeleteUser(ctx, record.UID); delErr != nil {
			log.Printf("Register: failed to roll back auth account '%s' after profile write failure: %v", record.UID, delErr)
		}
		return nil, fmt.Errorf("%w: failed to store profile for '%s': %v", ErrStorageFailed, record.UID, err)
	}

	return user, nil
}

// GetByID retrieves a user profile by Firebase Auth UID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// Update applies the provided fields to the stored profile and returns the
// updated document.
func (s *userService) Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DOB != nil {
		user.DOB = *req.DOB
	}
	if req.Height != nil {
		user.Height = *req.Height
	}
	if req.Weight != nil {
		user.Weight = *req.Weight
	}
	if req.Goal != nil {
		user.Goal = *req.Goal
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user '%s': %w", userID, err)
	}
	return user, nil
}

// Delete removes the Auth account, the profile document, and the user's
// generated plans. With cascadeAll enabled, progress logs, calendar entries
// and chat history go too. Cascade failures are logged, not fatal; the
// account deletion itself is what must succeed.
func (s *userService) Delete(ctx context.Context, userID string) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.authClient.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete auth account '%s': %w", userID, err)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile '%s': %w", userID, err)
	}

	for _, kind := range []models.PlanKind{models.PlanKindWorkout, models.PlanKindMeal} {
		if n, err := s.planRepo.DeleteByUserID(ctx, kind, userID); err != nil {
			log.Printf("Delete: cascade of %s plans for user '%s' failed after %d deletions: %v", kind, userID, n, err)
		}
	}

	if s.cascadeAll {
		if _, err := s.progressRepo.DeleteByUserID(ctx, userID); err != nil {
			log.Printf("Delete: cascade of progress logs for user '%s' failed: %v", userID, err)
		}
		if _, err := s.calendarRepo.DeleteByUserID(ctx, userID); err != nil {
			log.Printf("Delete: cascade of calendar entries for user '%s' failed: %v", userID, err)
		}
		if _, err := s.chatRepo.DeleteByUserID(ctx, userID); err != nil {
			log.Printf("Delete: cascade of chat history for user '%s' failed: %v", userID, err)
		}
	}

	return nil
}
