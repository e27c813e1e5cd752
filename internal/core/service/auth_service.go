package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// AuthService implements registration, login and bearer-token resolution.
type AuthService struct {
	repo       ports.UserRepository
	denylist   ports.TokenDenylist
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
	log        zerolog.Logger
	now        func() time.Time
}

// AuthOptions configures token issuing and password hashing.
type AuthOptions struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	// Denylist is optional; without it logout is a no-op.
	Denylist ports.TokenDenylist
}

func NewAuthService(repo ports.UserRepository, opts AuthOptions, log zerolog.Logger) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 30 * 24 * time.Hour
	}
	if opts.BcryptCost <= 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		denylist:   opts.Denylist,
		jwtSecret:  []byte(opts.JWTSecret),
		tokenTTL:   opts.TokenTTL,
		bcryptCost: opts.BcryptCost,
		log:        log,
		now:        time.Now,
	}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := domain.Missing("name", in.Name, "email", in.Email, "password", in.Password); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		StudentID:    strings.TrimSpace(in.StudentID),
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, "", err
	}
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResolveToken validates signature and expiry, rejects revoked tokens and
// loads the referenced identity. Every failure is domain.ErrUnauthorized.
func (s *AuthService) ResolveToken(ctx context.Context, raw string) (*domain.User, *ports.Session, error) {
	if raw == "" {
		return nil, nil, domain.ErrUnauthorized
	}

	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return nil, nil, domain.ErrUnauthorized
	}

	session := &ports.Session{TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	if s.denylist != nil && session.TokenID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, session.TokenID)
		if err != nil {
			s.log.Warn().Err(err).Msg("denylist check failed, accepting token")
		} else if revoked {
			return nil, nil, domain.ErrUnauthorized
		}
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Str("user_id", claims.Subject).Msg("identity lookup failed")
		}
		return nil, nil, domain.ErrUnauthorized
	}
	user.PasswordHash = ""
	return user, session, nil
}

// Logout revokes the session's token until it expires.
func (s *AuthService) Logout(ctx context.Context, session *ports.Session) error {
	if s.denylist == nil || session == nil || session.TokenID == "" {
		return nil
	}
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, session.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
