package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/policy"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// InquiryHook observes status changes ("created", "resolved").
type InquiryHook func(transition string)

type InquiryService struct {
	repo     ports.InquiryRepository
	log      zerolog.Logger
	onChange InquiryHook
	now      func() time.Time
}

func NewInquiryService(repo ports.InquiryRepository, log zerolog.Logger, onChange InquiryHook) *InquiryService {
	return &InquiryService{repo: repo, log: log, onChange: onChange, now: time.Now}
}

// List returns every inquiry with the author's name and email populated.
func (s *InquiryService) List(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error) {
	if err := policy.Authorize(actor, policy.Inquiry, policy.List); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, ports.InquiryFilter{Populate: true})
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return items, nil
}

// ListMine returns the caller's own inquiries.
func (s *InquiryService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error) {
	if err := policy.Authorize(actor, policy.Inquiry, policy.ListOwn); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, ports.InquiryFilter{UserID: actor.ID})
	if err != nil {
		return nil, fmt.Errorf("list own inquiries: %w", err)
	}
	return items, nil
}

func (s *InquiryService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error) {
	if err := policy.Authorize(actor, policy.Inquiry, policy.Read); err != nil {
		return nil, err
	}
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeInstance(actor, policy.Inquiry, policy.Read, q.User.ID); err != nil {
		return nil, err
	}
	return q, nil
}

// Create stores a PENDING inquiry authored by the caller.
func (s *InquiryService) Create(ctx context.Context, actor *domain.User, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
	if err := policy.Authorize(actor, policy.Inquiry, policy.Create); err != nil {
		return nil, err
	}
	if err := domain.Missing("subject", in.Subject, "message", in.Message); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Inquiry{
		User:      domain.UserRef{ID: actor.ID},
		Subject:   strings.TrimSpace(in.Subject),
		Message:   in.Message,
		Status:    domain.InquiryPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	s.notify("created")
	s.log.Info().Str("inquiry_id", created.ID).Str("user_id", actor.ID).Msg("inquiry submitted")
	return created, nil
}

// Resolve moves an inquiry to RESOLVED. Resolving twice returns the stored
// document without writing.
func (s *InquiryService) Resolve(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error) {
	if err := policy.Authorize(actor, policy.Inquiry, policy.Resolve); err != nil {
		return nil, err
	}
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeInstance(actor, policy.Inquiry, policy.Resolve, q.User.ID); err != nil {
		return nil, err
	}
	if !q.Status.CanTransitionTo(domain.InquiryResolved) {
		return nil, fmt.Errorf("resolve inquiry: %w (from %s)", domain.ErrInvalidTransition, q.Status)
	}
	if q.Status == domain.InquiryResolved {
		return q, nil
	}

	resolved, err := s.repo.SetStatus(ctx, id, domain.InquiryResolved)
	if err != nil {
		return nil, err
	}
	s.notify("resolved")
	s.log.Info().Str("inquiry_id", id).Str("by", actor.ID).Msg("inquiry resolved")
	return resolved, nil
}

func (s *InquiryService) notify(transition string) {
	if s.onChange != nil {
		s.onChange(transition)
	}
}
