package ports

import (
	"context"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

// AccountRepository defines persistence for the two disjoint account kinds.
// The role argument selects the kind; uniqueness of email is enforced per
// kind at the storage layer.
type AccountRepository interface {
	Create(ctx context.Context, role domain.Role, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error)
	FindByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error)
}
