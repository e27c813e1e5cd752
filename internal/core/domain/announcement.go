package domain

import "time"

// AudienceAll targets every identity.
const AudienceAll = "all"

// Announcement is a notice broadcast by an administrator.
type Announcement struct {
	ID        string    `json:"_id"`
	Admin     UserRef   `json:"admin"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Urgent    bool      `json:"urgent"`
	Audience  string    `json:"audience"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnnouncementPatch carries a partial update. Nil fields are left untouched.
type AnnouncementPatch struct {
	Title    *string
	Message  *string
	Urgent   *bool
	Audience *string
}
