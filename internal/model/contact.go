package model

import "time"

// Contact is a message submitted through the general inquiry form.
// InquiryType is free text — the form offers fixed choices, but the
// backend does not enforce them.
type Contact struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	InquiryType string    `json:"inquiryType"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
