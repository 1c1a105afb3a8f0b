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

const applicationsCollection = "applications"

// ApplicationRepository persists job applications. A unique compound index
// on (seeker_id, job_id) is the final arbiter for duplicate submissions.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type applicationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SeekerID  primitive.ObjectID `bson:"seeker_id"`
	JobID     primitive.ObjectID `bson:"job_id"`
	Status    string             `bson:"status"`
	AppliedAt time.Time          `bson:"applied_at"`
}

// Create inserts an application. A duplicate-key error from the unique index
// maps to the domain conflict so a lost race never leaks a driver error.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (string, error) {
	seekerOID, err := primitive.ObjectIDFromHex(app.SeekerID)
	if err != nil {
		return "", fmt.Errorf("invalid seeker id: %w", err)
	}
	jobOID, err := primitive.ObjectIDFromHex(app.JobID)
	if err != nil {
		return "", domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, applicationDoc{
		SeekerID:  seekerOID,
		JobID:     jobOID,
		Status:    string(app.Status),
		AppliedAt: app.AppliedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrAlreadyApplied
		}
		return "", fmt.Errorf("insert application: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) FindBySeekerAndJob(ctx context.Context, seekerID, jobID string) (*domain.Application, error) {
	seekerOID, err := primitive.ObjectIDFromHex(seekerID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}
	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	err = r.coll.FindOne(ctx, bson.M{"seeker_id": seekerOID, "job_id": jobOID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

type seekerApplicationRow struct {
	ID        primitive.ObjectID `bson:"_id"`
	JobID     primitive.ObjectID `bson:"job_id"`
	Status    string             `bson:"status"`
	AppliedAt time.Time          `bson:"applied_at"`
	Job       jobDoc             `bson:"job"`
}

// ListBySeeker returns the seeker's applications joined with the jobs they
// target, newest first. The join mirrors the relational JOIN the data model
// implies, expressed as a $lookup.
func (r *ApplicationRepository) ListBySeeker(ctx context.Context, seekerID string) ([]*ports.SeekerApplication, error) {
	seekerOID, err := primitive.ObjectIDFromHex(seekerID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
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
		{{Key: "$sort", Value: bson.D{{Key: "applied_at", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list seeker applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]*ports.SeekerApplication, 0)
	for cur.Next(ctx) {
		var row seekerApplicationRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, &ports.SeekerApplication{
			ID:           row.ID.Hex(),
			JobID:        row.JobID.Hex(),
			Status:       domain.ApplicationStatus(row.Status),
			AppliedAt:    row.AppliedAt,
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
		return nil, fmt.Errorf("list seeker applications: %w", err)
	}
	return apps, nil
}

type recruiterApplicationRow struct {
	ID        primitive.ObjectID `bson:"_id"`
	JobID     primitive.ObjectID `bson:"job_id"`
	Status    string             `bson:"status"`
	AppliedAt time.Time          `bson:"applied_at"`
	Job       jobDoc             `bson:"job"`
	Applicant accountDoc         `bson:"applicant"`
}

// ListByRecruiter returns all applications targeting the recruiter's
// postings, joined with the posting and the applicant's public details.
func (r *ApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID string) ([]*ports.RecruiterApplication, error) {
	recruiterOID, err := primitive.ObjectIDFromHex(recruiterID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         jobsCollection,
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: "$job"}},
		{{Key: "$match", Value: bson.M{"job.recruiter_id": recruiterOID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         seekersCollection,
			"localField":   "seeker_id",
			"foreignField": "_id",
			"as":           "applicant",
		}}},
		{{Key: "$unwind", Value: "$applicant"}},
		{{Key: "$sort", Value: bson.D{{Key: "applied_at", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list recruiter applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]*ports.RecruiterApplication, 0)
	for cur.Next(ctx) {
		var row recruiterApplicationRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, &ports.RecruiterApplication{
			ID:             row.ID.Hex(),
			JobID:          row.JobID.Hex(),
			Status:         domain.ApplicationStatus(row.Status),
			AppliedAt:      row.AppliedAt,
			JobTitle:       row.Job.Title,
			Company:        row.Job.Company,
			Location:       row.Job.Location,
			ApplicantName:  row.Applicant.FullName,
			ApplicantEmail: row.Applicant.Email,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list recruiter applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// DeleteByJob removes every application targeting jobID. Used by the job
// deletion cascade.
func (r *ApplicationRepository) DeleteByJob(ctx context.Context, jobID string) error {
	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"job_id": jobOID}); err != nil {
		return fmt.Errorf("delete applications by job: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique (seeker_id, job_id) index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
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

func (d *applicationDoc) toDomain() *domain.Application {
	return &domain.Application{
		ID:        d.ID.Hex(),
		SeekerID:  d.SeekerID.Hex(),
		JobID:     d.JobID.Hex(),
		Status:    domain.ApplicationStatus(d.Status),
		AppliedAt: d.AppliedAt,
	}
}
