package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/policy"
	"github.com/uniportal/event-portal/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Promote grants the admin role to the user with the given id.
func (s *UserService) Promote(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := policy.Authorize(actor, policy.User, policy.Promote); err != nil {
		return nil, err
	}
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.Role == domain.RoleAdmin {
		return target, nil
	}
	promoted, err := s.repo.UpdateRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.log.Warn().Str("user_id", id).Str("by", actor.ID).Msg("user promoted to admin")
	return promoted, nil
}
