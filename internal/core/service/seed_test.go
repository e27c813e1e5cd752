package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/uniportal/event-portal/internal/core/domain"
)

func adminSeed() AdminSeed {
	return AdminSeed{
		Name:       "System Admin",
		Email:      "Admin@Gmail.com",
		Password:   "admin123",
		StudentID:  "ADMIN001",
		BcryptCost: bcrypt.MinCost,
	}
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	repo := newStubUserRepo()

	for i := 0; i < 2; i++ {
		if err := SeedAdmin(context.Background(), repo, adminSeed(), zerolog.Nop()); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.byID))
	}

	u, err := repo.FindByEmail(context.Background(), "admin@gmail.com")
	if err != nil {
		t.Fatalf("seeded admin not found: %v", err)
	}
	if u.Role != domain.RoleAdmin || u.StudentID != "ADMIN001" {
		t.Fatalf("unexpected seeded user: %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")) != nil {
		t.Fatalf("seeded password does not verify")
	}
}

func TestSeedAdmin_PromotesExisting(t *testing.T) {
	repo := newStubUserRepo()
	existing, _ := repo.Create(context.Background(), &domain.User{Email: "admin@gmail.com", Role: domain.RoleStudent})

	if err := SeedAdmin(context.Background(), repo, adminSeed(), zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if repo.byID[existing.ID].Role != domain.RoleAdmin {
		t.Fatalf("existing user not promoted")
	}
	if len(repo.byID) != 1 {
		t.Fatalf("seed should not create a second account")
	}
}

func TestSeedAdmin_Errors(t *testing.T) {
	seed := adminSeed()
	seed.Email = " "
	if err := SeedAdmin(context.Background(), newStubUserRepo(), seed, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for blank email")
	}

	repo := newStubUserRepo()
	repo.err = errors.New("connection refused")
	if err := SeedAdmin(context.Background(), repo, adminSeed(), zerolog.Nop()); err == nil {
		t.Fatalf("expected lookup error to propagate")
	}
}
