package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/ports"
)

// AdminHandler serves the /admin routes.
type AdminHandler struct {
	dashboard ports.DashboardService
	users     ports.UserService
}

func NewAdminHandler(dashboard ports.DashboardService, users ports.UserService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, users: users}
}

// Stats handles GET /admin/stats.
//
// @Summary      Dashboard statistics
// @Description  Counters plus the five most recent events and inquiries.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Promote handles PATCH /admin/users/:id/promote.
//
// @Summary      Promote user to admin
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/promote [patch]
func (h *AdminHandler) Promote(c echo.Context) error {
	user, err := h.users.Promote(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
