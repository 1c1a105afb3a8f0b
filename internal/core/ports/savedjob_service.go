package ports

import "context"

// SavedJobService defines use-case operations for a seeker's saved jobs.
type SavedJobService interface {
	// Save bookmarks a job. Saving the same job twice yields domain.ErrAlreadySaved.
	Save(ctx context.Context, seekerID, jobID string) (string, error)
	List(ctx context.Context, seekerID string) ([]*SavedJobView, error)
	// Remove deletes the seeker's bookmark; a missing entry yields
	// domain.ErrSavedJobNotFound.
	Remove(ctx context.Context, seekerID, jobID string) error
}
