package core

import (
	"context"

	"github.com/example/fitplanner-backend/internal/cohere"
	"github.com/example/fitplanner-backend/internal/models"
	"github.com/example/fitplanner-backend/internal/planner"
)

// Generator is the generative-text collaborator. *cohere.Client satisfies
// it; tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string, params cohere.Params) (string, error)
}

// UserService defines the interface for account and profile operations.
type UserService interface {
	// Register creates the Firebase Auth account and the Firestore profile
	// document keyed by the new UID.
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error)
	// Delete removes the Auth account, the profile, and cascades dependent
	// collections per the configured cascade set.
	Delete(ctx context.Context, userID string) error
}

// PlanService orchestrates the generate-and-persist workflow for workout and
// meal plans.
type PlanService interface {
	// Generate fetches the profile, builds the prompt, calls the generator
	// and appends a new plan document. When the write fails after a
	// successful generation the plan text is still returned alongside an
	// error wrapping ErrStorageFailed; response delivery and persistence are
	// not atomic.
	Generate(ctx context.Context, userID string, kind models.PlanKind) (*models.Plan, error)
	// Latest returns the plan with the greatest createdAt, or ErrPlanNotFound.
	Latest(ctx context.Context, userID string, kind models.PlanKind) (*models.Plan, error)
	// ExportLatest renders the latest plan as a PDF document.
	ExportLatest(ctx context.Context, userID string, kind models.PlanKind) ([]byte, error)
	// Parse exposes the day-structure heuristic for rendering layers.
	Parse(text string) planner.ParsedPlan
}

// ProgressService defines the interface for progress log operations.
// Every mutating call verifies the record belongs to the caller.
type ProgressService interface {
	Create(ctx context.Context, userID string, req models.CreateProgressRequest) (*models.ProgressLog, error)
	List(ctx context.Context, userID string) ([]*models.ProgressLog, error)
	Update(ctx context.Context, userID, logID string, req models.UpdateProgressRequest) (*models.ProgressLog, error)
	Delete(ctx context.Context, userID, logID string) error
}

// CalendarService defines the interface for workout calendar operations.
type CalendarService interface {
	Create(ctx context.Context, userID string, req models.CreateCalendarRequest) (*models.CalendarEntry, error)
	List(ctx context.Context, userID string) ([]*models.CalendarEntry, error)
	Update(ctx context.Context, userID, entryID string, req models.UpdateCalendarRequest) (*models.CalendarEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

// ChatService defines the interface for the chat assistant.
type ChatService interface {
	// Send generates the assistant reply for one turn and persists the
	// exchange. Unlike plan generation, an empty completion is an error.
	Send(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatMessage, error)
	History(ctx context.Context, userID string) ([]*models.ChatMessage, error)
	// Delete removes one chat turn; ErrForbidden when the caller does not
	// own it, leaving the record intact.
	Delete(ctx context.Context, userID, chatID string) error
}

// ContactService relays contact-form submissions by email.
type ContactService interface {
	Send(ctx context.Context, req models.ContactRequest) error
}
