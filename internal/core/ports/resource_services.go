package ports

import (
	"context"
	"io"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// CreateEventInput carries the fields of POST /events.
type CreateEventInput struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
	Category    string
	ImageURL    string
}

type EventService interface {
	List(ctx context.Context) ([]*domain.Event, error)
	Create(ctx context.Context, actor *domain.User, in CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, actor *domain.User, id string, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	Register(ctx context.Context, actor *domain.User, id string) (*domain.Event, error)
}

// CreateAnnouncementInput carries the fields of POST /announcements.
type CreateAnnouncementInput struct {
	Title    string
	Message  string
	Urgent   bool
	Audience string
}

type AnnouncementService interface {
	List(ctx context.Context, actor *domain.User) ([]*domain.Announcement, error)
	Create(ctx context.Context, actor *domain.User, in CreateAnnouncementInput) (*domain.Announcement, error)
	Update(ctx context.Context, actor *domain.User, id string, patch domain.AnnouncementPatch) (*domain.Announcement, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}

// CreateInquiryInput carries the fields of POST /inquiries. There is no
// author field: the author is always the caller.
type CreateInquiryInput struct {
	Subject string
	Message string
}

type InquiryService interface {
	List(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error)
	ListMine(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error)
	Create(ctx context.Context, actor *domain.User, in CreateInquiryInput) (*domain.Inquiry, error)
	Resolve(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error)
}

type DashboardService interface {
	Stats(ctx context.Context, actor *domain.User) (*domain.DashboardStats, error)
}

type UserService interface {
	Promote(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
}

// ImageUpload is a single uploaded image.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type UploadService interface {
	// SaveEventImage stores the image and returns its public path.
	SaveEventImage(ctx context.Context, actor *domain.User, in ImageUpload) (string, error)
}
