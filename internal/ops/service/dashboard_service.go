package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

// dashboardCacheTTL is how long a computed dashboard payload stays fresh.
const dashboardCacheTTL = 60 * time.Second

type DashboardService struct {
	repo  *repository.DashboardRepository
	cache *ResponseCache
}

func NewDashboardService(repo *repository.DashboardRepository, cache *ResponseCache) *DashboardService {
	return &DashboardService{repo: repo, cache: cache}
}

// Analytics bundles the counters with recent activity.
type Analytics struct {
	Stats         *repository.DashboardStats `json:"stats"`
	RecentSales   []entity.Sale              `json:"recent_sales"`
	RecentTickets []entity.ServiceTicket     `json:"recent_tickets"`
}

func (s *DashboardService) Stats(ctx context.Context) (*repository.DashboardStats, error) {
	var cached repository.DashboardStats
	if hit, err := s.cache.Get(ctx, "dashboard:stats", &cached); err == nil && hit {
		return &cached, nil
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	_ = s.cache.Set(ctx, "dashboard:stats", stats, dashboardCacheTTL)
	return stats, nil
}

func (s *DashboardService) Analytics(ctx context.Context) (*Analytics, error) {
	var cached Analytics
	if hit, err := s.cache.Get(ctx, "dashboard:analytics", &cached); err == nil && hit {
		return &cached, nil
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	sales, err := s.repo.RecentSales(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	tickets, err := s.repo.RecentTickets(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("recent tickets: %w", err)
	}
	analytics := &Analytics{Stats: stats, RecentSales: sales, RecentTickets: tickets}
	_ = s.cache.Set(ctx, "dashboard:analytics", analytics, dashboardCacheTTL)
	return analytics, nil
}
