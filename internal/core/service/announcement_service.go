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

type AnnouncementService struct {
	repo ports.AnnouncementRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAnnouncementService(repo ports.AnnouncementRepository, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, log: log, now: time.Now}
}

func (s *AnnouncementService) List(ctx context.Context, actor *domain.User) ([]*domain.Announcement, error) {
	if err := policy.Authorize(actor, policy.Announcement, policy.List); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

func (s *AnnouncementService) Create(ctx context.Context, actor *domain.User, in ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	if err := policy.Authorize(actor, policy.Announcement, policy.Create); err != nil {
		return nil, err
	}
	if err := domain.Missing("title", in.Title, "message", in.Message); err != nil {
		return nil, err
	}

	audience := strings.TrimSpace(in.Audience)
	if audience == "" {
		audience = domain.AudienceAll
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Announcement{
		Admin:     domain.UserRef{ID: actor.ID},
		Title:     strings.TrimSpace(in.Title),
		Message:   in.Message,
		Urgent:    in.Urgent,
		Audience:  audience,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	s.log.Info().Str("announcement_id", created.ID).Bool("urgent", created.Urgent).Msg("announcement created")
	return created, nil
}

func (s *AnnouncementService) Update(ctx context.Context, actor *domain.User, id string, patch domain.AnnouncementPatch) (*domain.Announcement, error) {
	if err := policy.Authorize(actor, policy.Announcement, policy.Update); err != nil {
		return nil, err
	}
	var blank []string
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		blank = append(blank, "title")
	}
	if patch.Message != nil && strings.TrimSpace(*patch.Message) == "" {
		blank = append(blank, "message")
	}
	if len(blank) > 0 {
		return nil, &domain.ValidationError{Fields: blank, Reason: "fields cannot be blank"}
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeInstance(actor, policy.Announcement, policy.Update, existing.Admin.ID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *AnnouncementService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := policy.Authorize(actor, policy.Announcement, policy.Delete); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.AuthorizeInstance(actor, policy.Announcement, policy.Delete, existing.Admin.ID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
