package models

import "time"

// RestaurantSubmission is a user-submitted listing awaiting review. The
// validate tags drive go-playground validation at intake.
type RestaurantSubmission struct {
	ID      string `json:"id,omitempty"` // assigned at intake
	Name    string `json:"name" validate:"required,min=2"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required,len=2"`

	Phone   string `json:"phone_number,omitempty"`
	Website string `json:"website,omitempty" validate:"omitempty,url"`

	KosherCategory   string `json:"kosher_category" validate:"required,oneof=meat dairy pareve"`
	CertifyingAgency string `json:"certifying_agency" validate:"required"`

	HoursOfOperation string `json:"hours_of_operation,omitempty"`

	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	Status      string    `json:"status,omitempty"` // "pending" once accepted
}

// SubmissionReceipt acknowledges an accepted submission.
type SubmissionReceipt struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
}
