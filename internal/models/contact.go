package models

import "time"

// ContactSubmission is the body of a contact-form POST. Name and
// Email are required; everything else is optional.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Date    string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Venue   string `json:"venue,omitempty"`
	Message string `json:"message,omitempty"`
}

// InquiryOutcome is the recorded result of a contact submission,
// including the independently tracked notification and archive steps.
type InquiryOutcome struct {
	Submission       ContactSubmission `json:"submission"`
	ReceivedAt       time.Time         `json:"receivedAt"`
	ConfirmationSent bool              `json:"confirmationSent"`
	NotificationSent bool              `json:"notificationSent"`
	NotificationErr  string            `json:"notificationErr,omitempty"`
}
