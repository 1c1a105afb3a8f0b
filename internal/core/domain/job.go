package domain

import (
	"errors"
	"time"
)

// JobType enumerates the employment arrangements a posting may offer.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// JobStatus is the publication state of a posting. Only active jobs appear in
// the public listing.
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
)

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJobType = errors.New("invalid job type")

// Job is a posting owned by exactly one recruiter. RecruiterName is
// denormalised from the owning account at creation time so listings do not
// need a second lookup.
type Job struct {
	ID            string    `json:"id"`
	RecruiterID   string    `json:"recruiter_id"`
	RecruiterName string    `json:"recruiter_name"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location,omitempty"`
	Salary        string    `json:"salary,omitempty"`
	JobType       JobType   `json:"job_type"`
	Description   string    `json:"description"`
	Requirements  string    `json:"requirements,omitempty"`
	Status        JobStatus `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
