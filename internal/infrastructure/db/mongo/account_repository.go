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

const (
	seekersCollection    = "seekers"
	recruitersCollection = "recruiters"
)

// AccountRepository persists the two disjoint account kinds in separate
// collections, each carrying its own unique index on email. That keeps the
// uniqueness domains independent: a seeker and a recruiter may share an email.
type AccountRepository struct {
	db *mongo.Database
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	City         string             `bson:"city,omitempty"`
	Age          int                `bson:"age,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *AccountRepository) coll(role domain.Role) *mongo.Collection {
	if role == domain.RoleRecruiter {
		return r.db.Collection(recruitersCollection)
	}
	return r.db.Collection(seekersCollection)
}

// Create inserts a new account of the given kind. The unique email index is
// the final arbiter when two signups race past the service-level check.
func (r *AccountRepository) Create(ctx context.Context, role domain.Role, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		FullName:     account.FullName,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		City:         account.City,
		Age:          account.Age,
		CreatedAt:    account.CreatedAt,
	}

	res, err := r.coll(role).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Role = role
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.coll(role).FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toDomain(role), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.coll(role).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toDomain(role), nil
}

// EnsureIndexes creates the unique email index on both account collections.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, role := range []domain.Role{domain.RoleSeeker, domain.RoleRecruiter} {
		if _, err := r.coll(role).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("create email index: %w", err)
		}
	}
	return nil
}

func (d *accountDoc) toDomain(role domain.Role) *domain.Account {
	return &domain.Account{
		ID:           d.ID.Hex(),
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		City:         d.City,
		Age:          d.Age,
		Role:         role,
		CreatedAt:    d.CreatedAt,
	}
}
