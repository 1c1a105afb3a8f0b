package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// accepted and rejected are terminal.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:     {StatusUnderReview, StatusAccepted, StatusRejected},
	StatusUnderReview: {StatusAccepted, StatusRejected},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied for this job")
var ErrInvalidStatus = errors.New("invalid status")
var ErrInvalidTransition = errors.New("invalid status transition")

// Valid reports whether s is one of the enumerated application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is the join between a seeker and a job. At most one exists per
// (seeker, job) pair; the storage layer enforces this with a unique index.
type Application struct {
	ID        string            `json:"id"`
	SeekerID  string            `json:"seeker_id"`
	JobID     string            `json:"job_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}
