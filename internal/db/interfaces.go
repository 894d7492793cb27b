package db

import (
	"context"

	"github.com/example/fitplanner-backend/internal/models"
)

// UserRepository defines the interface for user profile storage operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID string) error
}

// PlanRepository defines the interface for generated plan storage. One
// implementation serves both workout and meal plans; the kind selects the
// backing collection.
type PlanRepository interface {
	Create(ctx context.Context, kind models.PlanKind, plan *models.Plan) (string, error)
	// GetLatestByUserID returns the plan with the greatest createdAt for the
	// user, or ErrNotFound when the user has no plans of this kind.
	GetLatestByUserID(ctx context.Context, kind models.PlanKind, userID string) (*models.Plan, error)
	DeleteByUserID(ctx context.Context, kind models.PlanKind, userID string) (int, error)
}

// ProgressRepository defines the interface for progress log storage.
type ProgressRepository interface {
	Create(ctx context.Context, logEntry *models.ProgressLog) (string, error)
	GetByID(ctx context.Context, logID string) (*models.ProgressLog, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.ProgressLog, error) // ordered by date asc
	Update(ctx context.Context, logEntry *models.ProgressLog) error
	Delete(ctx context.Context, logID string) error
	DeleteByUserID(ctx context.Context, userID string) (int, error)
}

// CalendarRepository defines the interface for workout calendar storage.
type CalendarRepository interface {
	Create(ctx context.Context, entry *models.CalendarEntry) (string, error)
	GetByID(ctx context.Context, entryID string) (*models.CalendarEntry, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.CalendarEntry, error) // ordered by date asc
	Update(ctx context.Context, entry *models.CalendarEntry) error
	Delete(ctx context.Context, entryID string) error
	DeleteByUserID(ctx context.Context, userID string) (int, error)
}

// ChatRepository defines the interface for chat history storage.
type ChatRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) (string, error)
	GetByID(ctx context.Context, chatID string) (*models.ChatMessage, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.ChatMessage, error) // ordered by timestamp desc
	Delete(ctx context.Context, chatID string) error
	DeleteByUserID(ctx context.Context, userID string) (int, error)
}
