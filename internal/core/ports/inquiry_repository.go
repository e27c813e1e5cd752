package ports

import (
	"context"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// InquiryFilter narrows List. An empty UserID lists every inquiry.
type InquiryFilter struct {
	UserID string
	// Populate loads the author's name and email.
	Populate bool
	// Limit caps the result; zero means no limit.
	Limit int
}

// InquiryRepository defines persistence for inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, q *domain.Inquiry) (*domain.Inquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
	// List returns matching inquiries, newest first.
	List(ctx context.Context, filter InquiryFilter) ([]*domain.Inquiry, error)
	SetStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error)
}
