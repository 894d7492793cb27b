package core

import "errors"

// Sentinel errors the handler layer maps to HTTP status codes.
var (
	// ErrUserNotFound is returned when a user profile is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrPlanNotFound is returned when no plan exists yet for the user.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrRecordNotFound is returned when a progress log, calendar entry or
	// chat message is absent.
	ErrRecordNotFound = errors.New("record not found")
	// ErrForbidden is returned on an ownership mismatch.
	ErrForbidden = errors.New("not authorized for this record")
	// ErrGenerationFailed is returned when the generative provider fails.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrStorageFailed is returned when a write fails after a successful
	// computation; the computed result may still accompany it.
	ErrStorageFailed = errors.New("storage failed")
)
