package handler

import (
	"context"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, session *ports.Session) error
}

func (s *stubAuthService) ResolveToken(context.Context, string) (*domain.User, *ports.Session, error) {
	return nil, nil, domain.ErrUnauthorized
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, session *ports.Session) error {
	return s.logoutFn(ctx, session)
}

type stubEventService struct {
	listFn     func(ctx context.Context) ([]*domain.Event, error)
	createFn   func(ctx context.Context, actor *domain.User, in ports.CreateEventInput) (*domain.Event, error)
	updateFn   func(ctx context.Context, actor *domain.User, id string, p domain.EventPatch) (*domain.Event, error)
	deleteFn   func(ctx context.Context, actor *domain.User, id string) error
	registerFn func(ctx context.Context, actor *domain.User, id string) (*domain.Event, error)
}

func (s *stubEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.listFn(ctx)
}

func (s *stubEventService) Create(ctx context.Context, actor *domain.User, in ports.CreateEventInput) (*domain.Event, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubEventService) Update(ctx context.Context, actor *domain.User, id string, p domain.EventPatch) (*domain.Event, error) {
	return s.updateFn(ctx, actor, id, p)
}

func (s *stubEventService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubEventService) Register(ctx context.Context, actor *domain.User, id string) (*domain.Event, error) {
	return s.registerFn(ctx, actor, id)
}

type stubUploadService struct {
	saveFn func(ctx context.Context, actor *domain.User, in ports.ImageUpload) (string, error)
}

func (s *stubUploadService) SaveEventImage(ctx context.Context, actor *domain.User, in ports.ImageUpload) (string, error) {
	return s.saveFn(ctx, actor, in)
}

type stubInquiryService struct {
	listFn    func(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error)
	mineFn    func(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error)
	getFn     func(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error)
	createFn  func(ctx context.Context, actor *domain.User, in ports.CreateInquiryInput) (*domain.Inquiry, error)
	resolveFn func(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error)
}

func (s *stubInquiryService) List(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error) {
	return s.listFn(ctx, actor)
}

func (s *stubInquiryService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Inquiry, error) {
	return s.mineFn(ctx, actor)
}

func (s *stubInquiryService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubInquiryService) Create(ctx context.Context, actor *domain.User, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubInquiryService) Resolve(ctx context.Context, actor *domain.User, id string) (*domain.Inquiry, error) {
	return s.resolveFn(ctx, actor, id)
}

var (
	adminUser   = &domain.User{ID: "admin_1", Name: "System Admin", Email: "admin@gmail.com", Role: domain.RoleAdmin}
	studentUser = &domain.User{ID: "student_1", Name: "Ana", Email: "ana@uni.edu", Role: domain.RoleStudent}
)
