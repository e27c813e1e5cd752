package handler

import "github.com/uniportal/event-portal/internal/core/domain"

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	StudentID string `json:"studentId"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type createEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"imageUrl"`
}

// updateEventRequest leaves absent fields untouched.
type updateEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
}

type deleteEventResponse struct {
	ID string `json:"id"`
}

type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type createAnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Urgent   bool   `json:"urgent"`
	Audience string `json:"audience"`
}

type updateAnnouncementRequest struct {
	Title    *string `json:"title"`
	Message  *string `json:"message"`
	Urgent   *bool   `json:"urgent"`
	Audience *string `json:"audience"`
}

// createInquiryRequest has no author field; the author is always the caller.
type createInquiryRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
