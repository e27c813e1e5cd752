package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/policy"
)

// Authorize evaluates the role phase of the policy table for the route, so
// the check runs before binding or any handler logic. Ownership is left to
// the service once the resource is loaded.
func Authorize(resource policy.Resource, action policy.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Authorize(Identity(c), resource, action); err != nil {
				return err
			}
			return next(c)
		}
	}
}
