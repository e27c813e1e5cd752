package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

type stubResolver struct {
	tokens map[string]*domain.User
	calls  int
}

func (r *stubResolver) ResolveToken(_ context.Context, token string) (*domain.User, *ports.Session, error) {
	r.calls++
	u, ok := r.tokens[token]
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	return u, &ports.Session{TokenID: "jti-" + token, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func newResolver() *stubResolver {
	return &stubResolver{tokens: map[string]*domain.User{
		"admin-token":   {ID: "admin_1", Name: "System Admin", Role: domain.RoleAdmin},
		"student-token": {ID: "student_1", Name: "Ana", Role: domain.RoleStudent},
	}}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(newResolver())(func(c echo.Context) error {
		called = true
		if u := Identity(c); u == nil || u.ID != "admin_1" {
			t.Fatalf("identity not set: %+v", u)
		}
		if s := Session(c); s == nil || s.TokenID != "jti-admin-token" {
			t.Fatalf("session not set: %+v", s)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		calls  int
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Token admin-token"},
		{name: "empty bearer", header: "Bearer  "},
		{name: "unknown token", header: "Bearer not-a-token", calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			resolver := newResolver()
			handler := Authenticate(resolver)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
			if resolver.calls != tt.calls {
				t.Fatalf("expected %d resolver calls, got %d", tt.calls, resolver.calls)
			}
			if Identity(c) != nil {
				t.Fatalf("identity must not be set on failure")
			}
		})
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer student-token")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Authenticate(newResolver())(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}
}
