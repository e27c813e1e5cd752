package ports

import (
	"context"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// UserRepository defines persistence for identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID never returns the credential hash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
