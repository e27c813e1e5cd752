package ports

import (
	"context"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// AnnouncementRepository defines persistence for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
	Update(ctx context.Context, id string, patch domain.AnnouncementPatch) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
