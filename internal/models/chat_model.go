package models

import "time"

// ChatMessage stores one request/response turn with the chat assistant.
type ChatMessage struct {
	ID          string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID      string    `json:"userId" firestore:"userId"`
	UserMessage string    `json:"userMessage" firestore:"userMessage"`
	AIMessage   string    `json:"aiMessage" firestore:"aiMessage"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
}
