package ports

import (
	"context"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// EventRepository defines persistence for events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// List returns all events, newest first.
	List(ctx context.Context) ([]*domain.Event, error)
	// Recent returns the newest limit events with the creator name populated.
	Recent(ctx context.Context, limit int) ([]*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	// AddAttendee registers userID once; repeated calls are no-ops.
	AddAttendee(ctx context.Context, id, userID string) (*domain.Event, error)
	Count(ctx context.Context) (int64, error)
}
