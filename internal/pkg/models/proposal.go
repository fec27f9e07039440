package models

import "time"

// ProposalDraft holds the tutor's current walk selections
type ProposalDraft struct {
	TutorID    string    `json:"tutorId"`
	WalkerID   string    `json:"walkerId,omitempty"`
	WalkerName string    `json:"walkerName,omitempty"`
	PetID      string    `json:"petId,omitempty"`
	PetName    string    `json:"petName,omitempty"`
	Date       string    `json:"date,omitempty"` // YYYY-MM-DD
	Time       string    `json:"time,omitempty"` // HH:MM
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SelectWalkerRequest sets the walker of the draft
type SelectWalkerRequest struct {
	WalkerID string `json:"walkerId" validate:"required"`
}

// SelectPetRequest sets the pet of the draft
type SelectPetRequest struct {
	PetID string `json:"petId" validate:"required"`
}

// ScheduleRequest sets the date and time pickers of the draft
type ScheduleRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// SubmitProposalRequest carries the device location at submission time
type SubmitProposalRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ProposalResult is returned after a successful submission
type ProposalResult struct {
	Appointment *Appointment `json:"appointment"`
	Next        string       `json:"next"`
}

// ProposalOutcome is the result of a submission attempt
type ProposalOutcome string

const (
	ProposalSucceeded ProposalOutcome = "succeeded"
	ProposalFailed    ProposalOutcome = "failed"
)

// ProposalAttempt is an audit row for each submission
type ProposalAttempt struct {
	ID            string          `json:"id" db:"id"`
	TutorID       string          `json:"tutorId" db:"tutor_id"`
	WalkerID      string          `json:"walkerId" db:"walker_id"`
	PetID         string          `json:"petId" db:"pet_id"`
	ScheduledAt   time.Time       `json:"scheduledAt" db:"scheduled_at"`
	Outcome       ProposalOutcome `json:"outcome" db:"outcome"`
	AppointmentID *string         `json:"appointmentId,omitempty" db:"appointment_id"`
	Error         *string         `json:"error,omitempty" db:"error"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}

// AppointmentProposedEvent is published once the marketplace accepts a proposal
type AppointmentProposedEvent struct {
	AppointmentID string       `json:"appointmentId"`
	TutorID       string       `json:"tutorId"`
	WalkerID      string       `json:"walkerId"`
	PetID         string       `json:"petId"`
	ScheduledAt   time.Time    `json:"scheduledAt"`
	Location      GeoJSONPoint `json:"location"`
	ProposedAt    time.Time    `json:"proposedAt"`
}
