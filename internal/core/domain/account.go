package domain

import (
	"errors"
	"time"
)

// Role distinguishes the two disjoint account kinds. Each kind lives in its
// own collection, so an email is unique only within its kind.
type Role string

const (
	RoleSeeker    Role = "seeker"
	RoleRecruiter Role = "recruiter"
)

// Valid reports whether r is one of the known account kinds.
func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleRecruiter
}

var ErrAccountExists = errors.New("account already exists with this email")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid email or password")

// Account models a seeker or recruiter identity.
type Account struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	City         string    `json:"city,omitempty"`
	Age          int       `json:"age,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
