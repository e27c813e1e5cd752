package domain

import "time"

// InquiryStatus represents the lifecycle state of an inquiry.
type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "PENDING"
	InquiryResolved InquiryStatus = "RESOLVED"
)

// CanTransitionTo reports whether a transition from s to next is allowed.
// Resolving an already resolved inquiry is accepted as a no-op.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	switch s {
	case InquiryPending:
		return next == InquiryResolved
	case InquiryResolved:
		return next == InquiryResolved
	}
	return false
}

// Inquiry is a question submitted by a student.
type Inquiry struct {
	ID        string        `json:"_id"`
	User      UserRef       `json:"user"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
