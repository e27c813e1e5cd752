package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// AdminSeed describes the bootstrap administrator.
type AdminSeed struct {
	Name       string
	Email      string
	Password   string
	StudentID  string
	BcryptCost int
}

// SeedAdmin makes sure the bootstrap administrator exists. It creates the
// account when absent and promotes an existing account with another role.
// Running it again has no effect.
func SeedAdmin(ctx context.Context, repo ports.UserRepository, seed AdminSeed, log zerolog.Logger) error {
	email := normalizeEmail(seed.Email)
	if email == "" || seed.Password == "" {
		return errors.New("seed admin: email and password are required")
	}

	existing, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == domain.RoleAdmin {
			log.Debug().Str("email", email).Msg("admin already seeded")
			return nil
		}
		if _, err := repo.UpdateRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("seed admin: promote: %w", err)
		}
		log.Info().Str("email", email).Msg("existing user updated to admin role")
		return nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("seed admin: lookup: %w", err)
	}

	cost := seed.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), cost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Name:         seed.Name,
		Email:        email,
		StudentID:    seed.StudentID,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		// Lost a race with another instance seeding the same account.
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed admin: create: %w", err)
	}
	log.Info().Str("email", email).Msg("admin user seeded")
	return nil
}
