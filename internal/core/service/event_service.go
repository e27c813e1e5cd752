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

// EventHook is notified after an event is created. Used for metrics.
type EventHook func(e *domain.Event)

type EventService struct {
	repo      ports.EventRepository
	log       zerolog.Logger
	onCreated EventHook
	now       func() time.Time
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger, onCreated EventHook) *EventService {
	return &EventService{repo: repo, log: log, onCreated: onCreated, now: time.Now}
}

// List returns all events, newest first. Listing is public.
func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Create(ctx context.Context, actor *domain.User, in ports.CreateEventInput) (*domain.Event, error) {
	if err := policy.Authorize(actor, policy.Event, policy.Create); err != nil {
		return nil, err
	}
	if err := domain.Missing(
		"title", in.Title,
		"date", in.Date,
		"time", in.Time,
		"location", in.Location,
		"description", in.Description,
		"category", in.Category,
	); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Event{
		User:        domain.UserRef{ID: actor.ID},
		Title:       strings.TrimSpace(in.Title),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Location:    strings.TrimSpace(in.Location),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Attendees:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if s.onCreated != nil {
		s.onCreated(created)
	}
	s.log.Info().Str("event_id", created.ID).Str("by", actor.ID).Msg("event created")
	return created, nil
}

// Update applies a partial update. Blank values for required fields are
// rejected so an update can never produce an event a create would refuse.
func (s *EventService) Update(ctx context.Context, actor *domain.User, id string, patch domain.EventPatch) (*domain.Event, error) {
	if err := policy.Authorize(actor, policy.Event, policy.Update); err != nil {
		return nil, err
	}
	if err := blankPatchFields(patch); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeInstance(actor, policy.Event, policy.Update, existing.User.ID); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return existing, nil
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", id).Str("by", actor.ID).Msg("event updated")
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := policy.Authorize(actor, policy.Event, policy.Delete); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.AuthorizeInstance(actor, policy.Event, policy.Delete, existing.User.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("event_id", id).Str("by", actor.ID).Msg("event deleted")
	return nil
}

// Register adds the caller to the event's attendees. Registering twice is a
// no-op.
func (s *EventService) Register(ctx context.Context, actor *domain.User, id string) (*domain.Event, error) {
	if err := policy.Authorize(actor, policy.Event, policy.Register); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.HasAttendee(actor.ID) {
		return existing, nil
	}
	return s.repo.AddAttendee(ctx, id, actor.ID)
}

func blankPatchFields(p domain.EventPatch) error {
	var blank []string
	check := func(name string, v *string) {
		if v != nil && strings.TrimSpace(*v) == "" {
			blank = append(blank, name)
		}
	}
	check("title", p.Title)
	check("date", p.Date)
	check("time", p.Time)
	check("location", p.Location)
	check("description", p.Description)
	check("category", p.Category)
	if len(blank) > 0 {
		return &domain.ValidationError{Fields: blank, Reason: "fields cannot be blank"}
	}
	return nil
}
