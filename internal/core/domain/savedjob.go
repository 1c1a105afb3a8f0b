package domain

import (
	"errors"
	"time"
)

var ErrSavedJobNotFound = errors.New("saved job not found")
var ErrAlreadySaved = errors.New("job already saved")

// SavedJob is a seeker's bookmark on a job. At most one exists per
// (seeker, job) pair, enforced by a unique index.
type SavedJob struct {
	ID       string    `json:"id"`
	SeekerID string    `json:"seeker_id"`
	JobID    string    `json:"job_id"`
	SavedAt  time.Time `json:"saved_at"`
}
