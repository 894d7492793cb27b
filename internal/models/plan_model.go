package models

import "time"

// PlanKind distinguishes the two generated plan lineages. Each kind maps to
// its own Firestore collection so the lifecycles stay independent.
type PlanKind string

const (
	PlanKindWorkout PlanKind = "workout"
	PlanKindMeal    PlanKind = "meal"
)

// Collection returns the Firestore collection name backing this plan kind.
func (k PlanKind) Collection() string {
	if k == PlanKindMeal {
		return "mealPlans"
	}
	return "workoutPlans"
}

// Title returns a human-readable label for the plan kind, used in PDF
// exports and error messages.
func (k PlanKind) Title() string {
	if k == PlanKindMeal {
		return "Meal Plan"
	}
	return "Workout Plan"
}

// Plan is one generated plan document. Plans are append-only: generating
// again creates a new document, and "current" always means max createdAt.
type Plan struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID    string    `json:"userId" firestore:"userId"`
	Plan      string    `json:"plan" firestore:"plan"` // generated free text
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
