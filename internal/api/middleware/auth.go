package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// Context keys set by Authenticate.
const (
	IdentityKey = "identity"
	SessionKey  = "session"
)

// Authenticate resolves the bearer token and injects the identity and session
// into the context. Every failure is domain.ErrUnauthorized.
func Authenticate(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return fmt.Errorf("%w: no token", domain.ErrUnauthorized)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return fmt.Errorf("%w: malformed authorization header", domain.ErrUnauthorized)
			}

			user, session, err := resolver.ResolveToken(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil || user == nil {
				return fmt.Errorf("%w: token failed", domain.ErrUnauthorized)
			}

			c.Set(IdentityKey, user)
			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

// Identity returns the authenticated user, or nil on public routes.
func Identity(c echo.Context) *domain.User {
	u, _ := c.Get(IdentityKey).(*domain.User)
	return u
}

// Session returns the validated token session, or nil.
func Session(c echo.Context) *ports.Session {
	s, _ := c.Get(SessionKey).(*ports.Session)
	return s
}
