package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

const savedJobsCollection = "saved_jobs"

// SavedJobRepository persists a seeker's bookmarks. A unique compound index
// on (seeker_id, job_id) is the final arbiter for duplicate saves.
type SavedJobRepository struct {
	coll *mongo.Collection
}

func NewSavedJobRepository(db *mongo.Database) *SavedJobRepository {
	return &SavedJobRepository{coll: db.Collection(savedJobsCollection)}
}

type savedJobDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	SeekerID primitive.ObjectID `bson:"seeker_id"`
	JobID    primitive.ObjectID `bson:"job_id"`
	SavedAt  time.Time          `bson:"saved_at"`
}

func (r *SavedJobRepository) Create(ctx context.Context, saved *domain.SavedJob) (string, error) {
	seekerOID, err := primitive.ObjectIDFromHex(saved.SeekerID)
	if err != nil {
		return "", fmt.Errorf("invalid seeker id: %w", err)
	}
	jobOID, err := primitive.ObjectIDFromHex(saved.JobID)
	if err != nil {
		return "", domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, savedJobDoc{
		SeekerID: seekerOID,
		JobID:    jobOID,
		SavedAt:  saved.SavedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrAlreadySaved
		}
		return "", fmt.Errorf("insert saved job: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SavedJobRepository) FindBySeekerAndJob(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	seekerOID, err := primitive.ObjectIDFromHex(seekerID)
	if err != nil {
		return nil, domain.ErrSavedJobNotFound
	}
	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, domain.ErrSavedJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc savedJobDoc
	err = r.coll.FindOne(ctx, bson.M{"seeker_id": seekerOID, "job_id": jobOID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSavedJobNotFound
		}
		return nil, fmt.Errorf("find saved job: %w", err)
	}

	return &domain.SavedJob{
		ID:       doc.ID.Hex(),
		SeekerID: doc.SeekerID.Hex(),
		JobID:    doc.JobID.Hex(),
		SavedAt:  doc.SavedAt,
	}, nil
}

type savedJobRow struct {
	ID      primitive.ObjectID `bson:"_id"`
	JobID   primitive.ObjectID `bson:"job_id"`
	SavedAt time.Time          `bson:"saved_at"`
	Job     jobDoc             `bson:"job"`
}

// ListBySeeker returns the seeker's saved entries joined with the jobs they
// bookmark, newest first.
func (r *SavedJobRepository) ListBySeeker(ctx context.Context, seekerID string) ([]*ports.SavedJobView, error) {
	seekerOID, err := primitive.ObjectIDFromHex(seekerID)
	if err != nil {
		return nil, domain.ErrSavedJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"seeker_id": seekerOID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         jobsCollection,
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: "$job"}},
		{{Key: "$sort", Value: bson.D{{Key: "saved_at", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	defer cur.Close(ctx)

	saved := make([]*ports.SavedJobView, 0)
	for cur.Next(ctx) {
		var row savedJobRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode saved job: %w", err)
		}
		saved = append(saved, &ports.SavedJobView{
			ID:           row.ID.Hex(),
			JobID:        row.JobID.Hex(),
			SavedAt:      row.SavedAt,
			Title:        row.Job.Title,
			Company:      row.Job.Company,
			Location:     row.Job.Location,
			Salary:       row.Job.Salary,
			JobType:      domain.JobType(row.Job.JobType),
			Description:  row.Job.Description,
			Requirements: row.Job.Requirements,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	return saved, nil
}

// Delete removes the seeker's entry for jobID and reports whether one existed.
func (r *SavedJobRepository) Delete(ctx context.Context, seekerID, jobID string) (bool, error) {
	seekerOID, err := primitive.ObjectIDFromHex(seekerID)
	if err != nil {
		return false, nil
	}
	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"seeker_id": seekerOID, "job_id": jobOID})
	if err != nil {
		return false, fmt.Errorf("delete saved job: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// DeleteByJob removes every saved entry for jobID. Used by the job deletion cascade.
func (r *SavedJobRepository) DeleteByJob(ctx context.Context, jobID string) error {
	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"job_id": jobOID}); err != nil {
		return fmt.Errorf("delete saved jobs by job: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique (seeker_id, job_id) index.
func (r *SavedJobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "seeker_id", Value: 1}, {Key: "job_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
