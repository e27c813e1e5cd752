package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byID[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := cloneUser(u)
	c.PasswordHash = ""
	return c, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

type stubEventRepo struct {
	byID    map[string]*domain.Event
	nextID  int
	writes  int
	names   map[string]string // user id -> name for Recent
	listErr error
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{byID: make(map[string]*domain.Event), names: make(map[string]string)}
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.Attendees = append([]string{}, e.Attendees...)
	return &c
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	r.writes++
	r.nextID++
	c := cloneEvent(e)
	c.ID = fmt.Sprintf("event_%d", r.nextID)
	r.byID[c.ID] = c
	return cloneEvent(c), nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (r *stubEventRepo) sorted() []*domain.Event {
	out := make([]*domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, cloneEvent(e))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *stubEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sorted(), nil
}

func (r *stubEventRepo) Recent(_ context.Context, limit int) ([]*domain.Event, error) {
	out := r.sorted()
	if len(out) > limit {
		out = out[:limit]
	}
	for _, e := range out {
		e.User.Name = r.names[e.User.ID]
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, id string, p domain.EventPatch) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	r.writes++
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&e.Title, p.Title)
	set(&e.Date, p.Date)
	set(&e.Time, p.Time)
	set(&e.Location, p.Location)
	set(&e.Description, p.Description)
	set(&e.Category, p.Category)
	set(&e.ImageURL, p.ImageURL)
	return cloneEvent(e), nil
}

func (r *stubEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	r.writes++
	delete(r.byID, id)
	return nil
}

func (r *stubEventRepo) AddAttendee(_ context.Context, id, userID string) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	r.writes++
	if !e.HasAttendee(userID) {
		e.Attendees = append(e.Attendees, userID)
	}
	return cloneEvent(e), nil
}

func (r *stubEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

// ---------------------------------------------------------------------------
// Announcements
// ---------------------------------------------------------------------------

type stubAnnouncementRepo struct {
	byID   map[string]*domain.Announcement
	nextID int
	writes int
}

func newStubAnnouncementRepo() *stubAnnouncementRepo {
	return &stubAnnouncementRepo{byID: make(map[string]*domain.Announcement)}
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	r.writes++
	r.nextID++
	c := *a
	c.ID = fmt.Sprintf("ann_%d", r.nextID)
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubAnnouncementRepo) FindByID(_ context.Context, id string) (*domain.Announcement, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	c := *a
	return &c, nil
}

func (r *stubAnnouncementRepo) List(_ context.Context) ([]*domain.Announcement, error) {
	out := make([]*domain.Announcement, 0, len(r.byID))
	for _, a := range r.byID {
		c := *a
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubAnnouncementRepo) Update(_ context.Context, id string, p domain.AnnouncementPatch) (*domain.Announcement, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	r.writes++
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Message != nil {
		a.Message = *p.Message
	}
	if p.Urgent != nil {
		a.Urgent = *p.Urgent
	}
	if p.Audience != nil {
		a.Audience = *p.Audience
	}
	c := *a
	return &c, nil
}

func (r *stubAnnouncementRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAnnouncementNotFound
	}
	r.writes++
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Inquiries
// ---------------------------------------------------------------------------

type stubInquiryRepo struct {
	byID       map[string]*domain.Inquiry
	nextID     int
	writes     int
	names      map[string]string
	lastFilter ports.InquiryFilter
}

func newStubInquiryRepo() *stubInquiryRepo {
	return &stubInquiryRepo{byID: make(map[string]*domain.Inquiry), names: make(map[string]string)}
}

func (r *stubInquiryRepo) Create(_ context.Context, q *domain.Inquiry) (*domain.Inquiry, error) {
	r.writes++
	r.nextID++
	c := *q
	c.ID = fmt.Sprintf("inq_%d", r.nextID)
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubInquiryRepo) FindByID(_ context.Context, id string) (*domain.Inquiry, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	c := *q
	return &c, nil
}

func (r *stubInquiryRepo) List(_ context.Context, f ports.InquiryFilter) ([]*domain.Inquiry, error) {
	r.lastFilter = f
	out := make([]*domain.Inquiry, 0, len(r.byID))
	for _, q := range r.byID {
		if f.UserID != "" && q.User.ID != f.UserID {
			continue
		}
		c := *q
		if f.Populate {
			c.User.Name = r.names[c.User.ID]
		}
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *stubInquiryRepo) SetStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	r.writes++
	q.Status = status
	c := *q
	return &c, nil
}

func (r *stubInquiryRepo) CountByStatus(_ context.Context, status domain.InquiryStatus) (int64, error) {
	var n int64
	for _, q := range r.byID {
		if q.Status == status {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Denylist and storage
// ---------------------------------------------------------------------------

type stubDenylist struct {
	revoked map[string]time.Duration
	err     error
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if d.err != nil {
		return d.err
	}
	d.revoked[jti] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	_, ok := d.revoked[jti]
	return ok, nil
}

type stubStorage struct {
	files map[string][]byte
	err   error
}

func newStubStorage() *stubStorage {
	return &stubStorage{files: make(map[string][]byte)}
}

func (s *stubStorage) Save(_ context.Context, path string, content io.Reader) error {
	if s.err != nil {
		return s.err
	}
	b, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.files[path] = b
	return nil
}

func (s *stubStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

// ---------------------------------------------------------------------------
// Actors
// ---------------------------------------------------------------------------

var (
	adminActor   = &domain.User{ID: "admin_1", Name: "System Admin", Role: domain.RoleAdmin}
	studentActor = &domain.User{ID: "student_1", Name: "Ana", Role: domain.RoleStudent}
	otherStudent = &domain.User{ID: "student_2", Name: "Ben", Role: domain.RoleStudent}
)
