package ports

import (
	"context"
	"time"
)

// TokenDenylist records revoked token ids until they would expire anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
