// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Story represents a recovery story submitted by an athlete.
//
// The `json:"..."` tags tell Go's encoding/json package how to serialize
// this struct to/from JSON. The names are camelCase to match the wire
// format the frontend already speaks.
//
// MODERATION STATE:
// A story has exactly one state flag: Approved. Every submission starts
// with Approved=false ("pending") and becomes visible to the public only
// after a moderator approves it. Rejection deletes the record outright,
// so there is no third state to track.
type Story struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Sport       string    `json:"sport"`
	InjuryType  string    `json:"injuryType"`
	Email       string    `json:"email"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Approved    bool      `json:"approved"`
	SubmittedAt time.Time `json:"submittedAt"` // set once at submission, never changed
}
