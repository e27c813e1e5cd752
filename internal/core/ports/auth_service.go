package ports

import (
	"context"
	"time"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// RegisterInput carries the self-registration fields. The role is never
// client-controlled: registrations always create students.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	StudentID string
}

// Session describes a validated bearer token.
type Session struct {
	TokenID   string
	ExpiresAt time.Time
}

// IdentityResolver turns a bearer token into the identity it references.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, *Session, error)
}

type AuthService interface {
	IdentityResolver
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, session *Session) error
}
