package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/example/fitplanner-backend/internal/cohere"
	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/export"
	"github.com/example/fitplanner-backend/internal/models"
	"github.com/example/fitplanner-backend/internal/planner"
)

// FallbackPlanText is stored and returned when the provider answers with no
// usable completion. An empty completion is not a failure.
const FallbackPlanText = "Could not generate plan."

// planService implements the PlanService interface for both plan kinds.
type planService struct {
	userRepo  db.UserRepository
	planRepo  db.PlanRepository
	generator Generator
	now       func() time.Time
}

// NewPlanService creates a new PlanService instance.
func NewPlanService(userRepo db.UserRepository, planRepo db.PlanRepository, generator Generator) PlanService {
	return &planService{
		userRepo:  userRepo,
		planRepo:  planRepo,
		generator: generator,
		now:       time.Now,
	}
}

// Generate runs the full workflow: profile lookup, prompt build, generation,
// persistence. Two concurrent calls for the same user both succeed and
// produce two documents; that race is accepted, not mitigated.
func (s *planService) Generate(ctx context.Context, userID string, kind models.PlanKind) (*models.Plan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load profile for user '%s': %w", userID, err)
	}

	now := s.now().UTC()
	prompt := planner.BuildPrompt(user, kind, now)

	params := cohere.WorkoutParams
	if kind == models.PlanKindMeal {
		params = cohere.MealParams
	}

	text, err := s.generator.Generate(ctx, prompt, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s plan for user '%s': %v", ErrGenerationFailed, kind, userID, err)
	}
	if text == "" {
		text = FallbackPlanText
	}

	plan := &models.Plan{
		UserID:    userID,
		Plan:      text,
		CreatedAt: now,
	}

	if _, err := s.planRepo.Create(ctx, kind, plan); err != nil {
		// The generation succeeded; the caller still gets the text. The
		// write is not required for the response to succeed.
		log.Printf("Generate: failed to persist %s plan for user '%s': %v", kind, userID, err)
		plan.ID = ""
		return plan, fmt.Errorf("%w: %s plan for user '%s': %v", ErrStorageFailed, kind, userID, err)
	}

	return plan, nil
}

// Latest returns the most recent plan of the given kind.
func (s *planService) Latest(ctx context.Context, userID string, kind models.PlanKind) (*models.Plan, error) {
	plan, err := s.planRepo.GetLatestByUserID(ctx, kind, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no %s plan for user '%s'", ErrPlanNotFound, kind, userID)
		}
		return nil, fmt.Errorf("failed to query latest %s plan for user '%s': %w", kind, userID, err)
	}
	return plan, nil
}

// ExportLatest renders the user's most recent plan as a PDF. Structured
// output becomes a Day/Plan table; opaque output flows as plain text.
func (s *planService) ExportLatest(ctx context.Context, userID string, kind models.PlanKind) ([]byte, error) {
	plan, err := s.Latest(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	userName := ""
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		userName = user.FullName()
	}

	pdf, err := export.RenderPlanPDF(kind.Title(), userName, planner.ParsePlan(plan.Plan), plan.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s plan PDF for user '%s': %w", kind, userID, err)
	}
	return pdf, nil
}

// Parse exposes the day-structure heuristic for handlers that render plans.
func (s *planService) Parse(text string) planner.ParsedPlan {
	return planner.ParsePlan(text)
}
