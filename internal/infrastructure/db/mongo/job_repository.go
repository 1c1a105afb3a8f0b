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
)

const jobsCollection = "jobs"

// JobRepository persists job postings.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RecruiterID   primitive.ObjectID `bson:"recruiter_id"`
	RecruiterName string             `bson:"recruiter_name"`
	Title         string             `bson:"title"`
	Company       string             `bson:"company"`
	Location      string             `bson:"location,omitempty"`
	Salary        string             `bson:"salary,omitempty"`
	JobType       string             `bson:"job_type"`
	Description   string             `bson:"description"`
	Requirements  string             `bson:"requirements,omitempty"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// Create inserts a new posting and returns its id.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (string, error) {
	recruiterOID, err := primitive.ObjectIDFromHex(job.RecruiterID)
	if err != nil {
		return "", fmt.Errorf("invalid recruiter id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, jobDoc{
		RecruiterID:   recruiterOID,
		RecruiterName: job.RecruiterName,
		Title:         job.Title,
		Company:       job.Company,
		Location:      job.Location,
		Salary:        job.Salary,
		JobType:       string(job.JobType),
		Description:   job.Description,
		Requirements:  job.Requirements,
		Status:        string(job.Status),
		CreatedAt:     job.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert job: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByID retrieves a posting by id. When recruiterID is non-empty the query
// is additionally filtered by owner, so a cross-owner lookup is
// indistinguishable from a missing job.
func (r *JobRepository) FindByID(ctx context.Context, id string, recruiterID string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	filter := bson.M{"_id": oid}
	if recruiterID != "" {
		recruiterOID, err := primitive.ObjectIDFromHex(recruiterID)
		if err != nil {
			return nil, domain.ErrJobNotFound
		}
		filter["recruiter_id"] = recruiterOID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

// ListActive returns all active postings, newest first.
func (r *JobRepository) ListActive(ctx context.Context) ([]*domain.Job, error) {
	return r.list(ctx, bson.M{"status": string(domain.JobStatusActive)})
}

// ListByRecruiter returns all postings owned by the recruiter, newest first.
func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Job, error) {
	recruiterOID, err := primitive.ObjectIDFromHex(recruiterID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	return r.list(ctx, bson.M{"recruiter_id": recruiterOID})
}

func (r *JobRepository) list(ctx context.Context, filter bson.M) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Delete removes a posting by id.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// EnsureIndexes creates the query indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "recruiter_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (d *jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:            d.ID.Hex(),
		RecruiterID:   d.RecruiterID.Hex(),
		RecruiterName: d.RecruiterName,
		Title:         d.Title,
		Company:       d.Company,
		Location:      d.Location,
		Salary:        d.Salary,
		JobType:       domain.JobType(d.JobType),
		Description:   d.Description,
		Requirements:  d.Requirements,
		Status:        domain.JobStatus(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}
