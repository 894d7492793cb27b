package models

import "time"

// CalendarEntry is a scheduled workout on the user's calendar.
type CalendarEntry struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID    string    `json:"userId" firestore:"userId"`
	Date      string    `json:"date" firestore:"date"` // ISO date (YYYY-MM-DD)
	Workout   string    `json:"workout" firestore:"workout"`
	Notes     string    `json:"notes,omitempty" firestore:"notes"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
