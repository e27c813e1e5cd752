package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uniportal/event-portal/internal/core/ports"
)

type InquiryHandler struct {
	inquiries ports.InquiryService
}

func NewInquiryHandler(inquiries ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// List handles GET /inquiries.
//
// @Summary      List all inquiries
// @Description  Admin only. The author's name and email are populated.
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inquiry
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	items, err := h.inquiries.List(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Mine handles GET /inquiries/mine.
//
// @Summary      List own inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inquiry
// @Failure      401  {object}  errorResponse
// @Router       /inquiries/mine [get]
func (h *InquiryHandler) Mine(c echo.Context) error {
	items, err := h.inquiries.ListMine(c.Request().Context(), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /inquiries/:id.
//
// @Summary      Get inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  domain.Inquiry
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /inquiries/{id} [get]
func (h *InquiryHandler) Get(c echo.Context) error {
	item, err := h.inquiries.Get(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /inquiries. Any author supplied in the body is ignored.
//
// @Summary      Submit inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInquiryRequest  true  "Inquiry"
// @Success      200   {object}  domain.Inquiry
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.inquiries.Create(c.Request().Context(), actor(c), ports.CreateInquiryInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Resolve handles PUT /inquiries/:id.
//
// @Summary      Resolve inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  domain.Inquiry
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /inquiries/{id} [put]
func (h *InquiryHandler) Resolve(c echo.Context) error {
	item, err := h.inquiries.Resolve(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
