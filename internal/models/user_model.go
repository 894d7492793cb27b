package models

import "time"

// User represents a fitness-app user profile persisted in Firestore.
// The document ID is the Firebase Auth UID, so the ID field itself is
// never stored inside the document.
type User struct {
	ID        string    `json:"id" firestore:"-"` // Firebase Auth UID, doubles as the document ID
	FirstName string    `json:"firstName" firestore:"firstName"`
	LastName  string    `json:"lastName" firestore:"lastName"`
	Email     string    `json:"email" firestore:"email"`
	DOB       string    `json:"dob,omitempty" firestore:"dob,omitempty"` // ISO date (YYYY-MM-DD); optional
	Height    float64   `json:"height" firestore:"height"`               // centimeters
	Weight    float64   `json:"weight" firestore:"weight"`               // kilograms
	Goal      string    `json:"goal" firestore:"goal"`                   // free-text fitness goal
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// FullName returns the user's display name as used in generation prompts.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
