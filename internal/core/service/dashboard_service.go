package service

import (
	"context"
	"fmt"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/policy"
	"github.com/uniportal/event-portal/internal/core/ports"
)

type DashboardService struct {
	users     ports.UserRepository
	events    ports.EventRepository
	inquiries ports.InquiryRepository
}

func NewDashboardService(users ports.UserRepository, events ports.EventRepository, inquiries ports.InquiryRepository) *DashboardService {
	return &DashboardService{users: users, events: events, inquiries: inquiries}
}

// Stats aggregates the admin dashboard counters and the merged activity feed.
func (s *DashboardService) Stats(ctx context.Context, actor *domain.User) (*domain.DashboardStats, error) {
	if err := policy.Authorize(actor, policy.Dashboard, policy.Read); err != nil {
		return nil, err
	}

	students, err := s.users.CountByRole(ctx, domain.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	events, err := s.events.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	pending, err := s.inquiries.CountByStatus(ctx, domain.InquiryPending)
	if err != nil {
		return nil, fmt.Errorf("count pending inquiries: %w", err)
	}

	recentEvents, err := s.events.Recent(ctx, domain.ActivityFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	recentInquiries, err := s.inquiries.List(ctx, ports.InquiryFilter{Populate: true, Limit: domain.ActivityFeedLimit})
	if err != nil {
		return nil, fmt.Errorf("recent inquiries: %w", err)
	}

	eventFeed := make([]domain.ActivityItem, 0, len(recentEvents))
	for _, e := range recentEvents {
		eventFeed = append(eventFeed, domain.EventActivity(e))
	}
	inquiryFeed := make([]domain.ActivityItem, 0, len(recentInquiries))
	for _, q := range recentInquiries {
		inquiryFeed = append(inquiryFeed, domain.InquiryActivity(q))
	}

	return &domain.DashboardStats{
		TotalStudents:    students,
		ActiveEvents:     events,
		PendingInquiries: pending,
		RecentActivity:   domain.MergeActivity(domain.ActivityFeedLimit, eventFeed, inquiryFeed),
	}, nil
}
