package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/api/middleware"
	"github.com/uniportal/event-portal/internal/core/domain"
)

// actor returns the identity injected by the Authenticate middleware, or nil
// on public routes. Services reject nil where the policy requires a caller.
func actor(c echo.Context) *domain.User {
	return middleware.Identity(c)
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
