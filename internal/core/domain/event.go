package domain

import "time"

// Event is a campus event published by an administrator.
type Event struct {
	ID          string    `json:"_id"`
	User        UserRef   `json:"user"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Attendees   []string  `json:"attendees"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventPatch carries a partial update. Nil fields are left untouched.
type EventPatch struct {
	Title       *string
	Date        *string
	Time        *string
	Location    *string
	Description *string
	Category    *string
	ImageURL    *string
}

// Empty reports whether the patch changes nothing.
func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Date == nil && p.Time == nil && p.Location == nil &&
		p.Description == nil && p.Category == nil && p.ImageURL == nil
}

// HasAttendee reports whether userID is registered for the event.
func (e *Event) HasAttendee(userID string) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}
