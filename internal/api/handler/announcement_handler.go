package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

type AnnouncementHandler struct {
	announcements ports.AnnouncementService
}

func NewAnnouncementHandler(announcements ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// List handles GET /announcements.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Announcement
// @Failure      401  {object}  errorResponse
// @Router       /announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	items, err := h.announcements.List(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /announcements.
//
// @Summary      Create announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnnouncementRequest  true  "Announcement"
// @Success      200   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req createAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.announcements.Create(c.Request().Context(), actor(c), ports.CreateAnnouncementInput{
		Title:    req.Title,
		Message:  req.Message,
		Urgent:   req.Urgent,
		Audience: req.Audience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Update handles PUT /announcements/:id.
//
// @Summary      Update announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Announcement id"
// @Param        body  body      updateAnnouncementRequest  true  "Fields to change"
// @Success      200   {object}  domain.Announcement
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req updateAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.announcements.Update(c.Request().Context(), actor(c), c.Param("id"), domain.AnnouncementPatch{
		Title:    req.Title,
		Message:  req.Message,
		Urgent:   req.Urgent,
		Audience: req.Audience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /announcements/:id.
//
// @Summary      Delete announcement
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Announcement id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.announcements.Delete(c.Request().Context(), actor(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Announcement removed"})
}
