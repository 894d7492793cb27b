package api

import "time"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message
	Details string `json:"details,omitempty"` // More specific details, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PlanResponse is the wire shape for generated plans. Saved is false when
// the generation succeeded but the write did not; the text is returned
// regardless, since response delivery and persistence are not atomic.
type PlanResponse struct {
	ID        string    `json:"id,omitempty"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
	Saved     bool      `json:"saved"`
}

// ChatResponse is the wire shape for one assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
}
