package ports

import (
	"context"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

// SignupInput carries the fields accepted at account creation.
type SignupInput struct {
	FullName string
	Email    string
	Password string
	City     string
	Age      int
}

// AuthService implements signup and login for both account kinds and issues
// the signed session token returned on successful login.
type AuthService interface {
	Signup(ctx context.Context, role domain.Role, input SignupInput) (*domain.Account, error)
	Login(ctx context.Context, role domain.Role, email, password string) (string, *domain.Account, error)
}
