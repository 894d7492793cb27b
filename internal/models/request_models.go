package models

// RegisterUserRequest represents the request body for creating a new account.
// Gin's binding tags cover presence; the handler layer adds the field-level
// checks (email shape, password length, numeric height/weight, ISO dob).
type RegisterUserRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	DOB       string  `json:"dob,omitempty"`
	Height    float64 `json:"height" binding:"required"`
	Weight    float64 `json:"weight" binding:"required"`
	Goal      string  `json:"goal" binding:"required"`
}

// UpdateUserRequest represents a partial profile update.
// Pointers distinguish "not provided" from zero values.
type UpdateUserRequest struct {
	FirstName *string  `json:"firstName,omitempty"`
	LastName  *string  `json:"lastName,omitempty"`
	DOB       *string  `json:"dob,omitempty"`
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Goal      *string  `json:"goal,omitempty"`
}

// CreateProgressRequest represents the request body for saving a progress log.
type CreateProgressRequest struct {
	Date   string  `json:"date" binding:"required"`
	Weight float64 `json:"weight" binding:"required"`
	Note   string  `json:"note,omitempty"`
}

// UpdateProgressRequest represents a partial progress-log update.
type UpdateProgressRequest struct {
	Date   *string  `json:"date,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Note   *string  `json:"note,omitempty"`
}

// CreateCalendarRequest represents the request body for scheduling a workout.
type CreateCalendarRequest struct {
	Date    string `json:"date" binding:"required"`
	Workout string `json:"workout" binding:"required"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateCalendarRequest represents a partial calendar-entry update.
type UpdateCalendarRequest struct {
	Date    *string `json:"date,omitempty"`
	Workout *string `json:"workout,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// ChatRequest represents one chat-assistant turn. History is the running
// transcript the client maintains; it is embedded verbatim in the prompt.
type ChatRequest struct {
	Input   string `json:"input" binding:"required"`
	History string `json:"history" binding:"required"`
}

// ContactRequest represents the contact-form submission relayed by email.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
