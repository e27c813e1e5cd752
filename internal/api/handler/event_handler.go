package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// EventHandler serves the /events routes.
type EventHandler struct {
	events  ports.EventService
	uploads ports.UploadService
}

func NewEventHandler(events ports.EventService, uploads ports.UploadService) *EventHandler {
	return &EventHandler{events: events, uploads: uploads}
}

// List handles GET /events.
//
// @Summary      List events
// @Description  Returns every event, newest first.
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create handles POST /events.
//
// @Summary      Create event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.events.Create(c.Request().Context(), actor(c), ports.CreateEventInput{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Update handles PUT /events/:id.
//
// @Summary      Update event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req updateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.events.Update(c.Request().Context(), actor(c), c.Param("id"), domain.EventPatch{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:id.
//
// @Summary      Delete event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  deleteEventResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.events.Delete(c.Request().Context(), actor(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteEventResponse{ID: id})
}

// Register handles POST /events/register/:id.
//
// @Summary      Register for event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/register/{id} [post]
func (h *EventHandler) Register(c echo.Context) error {
	event, err := h.events.Register(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Upload handles POST /events/upload with a multipart "image" field.
//
// @Summary      Upload event image
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file"
// @Success      200    {object}  uploadResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /events/upload [post]
func (h *EventHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return &domain.ValidationError{Fields: []string{"image"}}
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := h.uploads.SaveEventImage(c.Request().Context(), actor(c), ports.ImageUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  f,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, uploadResponse{ImageURL: url})
}
