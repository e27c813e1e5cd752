package domain

import (
	"sort"
	"time"
)

// ActivityFeedLimit caps the number of recent activity entries.
const ActivityFeedLimit = 5

// ActivityItem is a single entry of the admin dashboard feed.
type ActivityItem struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Time     time.Time `json:"time"`
	Icon     string    `json:"icon"`
}

// DashboardStats is the aggregate returned by GET /admin/stats.
type DashboardStats struct {
	TotalStudents    int64          `json:"totalStudents"`
	ActiveEvents     int64          `json:"activeEvents"`
	PendingInquiries int64          `json:"pendingInquiries"`
	RecentActivity   []ActivityItem `json:"recentActivity"`
}

// EventActivity tags a recent event for the feed.
func EventActivity(e *Event) ActivityItem {
	by := e.User.Name
	if by == "" {
		by = "Admin"
	}
	return ActivityItem{
		Type:     "event",
		Title:    e.Title,
		Subtitle: "Event created by " + by,
		Time:     e.CreatedAt,
		Icon:     "event",
	}
}

// InquiryActivity tags a recent inquiry for the feed.
func InquiryActivity(q *Inquiry) ActivityItem {
	from := q.User.Name
	if from == "" {
		from = "Student"
	}
	return ActivityItem{
		Type:     "inquiry",
		Title:    q.Subject,
		Subtitle: "Inquiry from " + from,
		Time:     q.CreatedAt,
		Icon:     "chat",
	}
}

// MergeActivity concatenates the feeds, sorts them newest first (stable for
// equal timestamps) and truncates to limit.
func MergeActivity(limit int, feeds ...[]ActivityItem) []ActivityItem {
	var out []ActivityItem
	for _, f := range feeds {
		out = append(out, f...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []ActivityItem{}
	}
	return out
}
