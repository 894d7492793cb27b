package models

import "time"

// ProgressLog is a single user-entered weight measurement.
type ProgressLog struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID    string    `json:"userId" firestore:"userId"`
	Date      string    `json:"date" firestore:"date"` // ISO date (YYYY-MM-DD)
	Weight    float64   `json:"weight" firestore:"weight"`
	Note      string    `json:"note,omitempty" firestore:"note"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
