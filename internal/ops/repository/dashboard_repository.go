package repository

import (
	"context"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats is the aggregate snapshot behind /dashboard/stats and /analytics.
type DashboardStats struct {
	TotalCustomers   int64   `json:"total_customers"`
	ActiveProducts   int64   `json:"active_products"`
	TotalSales       int64   `json:"total_sales"`
	TotalRevenue     float64 `json:"total_revenue"`
	OpenTickets      int64   `json:"open_tickets"`
	PendingEnquiries int64   `json:"pending_enquiries"`
	ActiveDispatches int64   `json:"active_dispatches"`
}

func (r *DashboardRepository) Stats(ctx context.Context) (*DashboardStats, error) {
	var s DashboardStats
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("deleted_at IS NULL").Count(&s.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Where("is_active = true").Count(&s.ActiveProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Sale{}).Count(&s.TotalSales).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Sale{}).Select("COALESCE(SUM(final_amount), 0)").Scan(&s.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.ServiceTicket{}).
		Where("status IN ?", []string{entity.TicketStatusOpen, entity.TicketStatusInProgress}).
		Count(&s.OpenTickets).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Enquiry{}).
		Where("status IN ?", []string{entity.EnquiryStatusNew, entity.EnquiryStatusContacted}).
		Count(&s.PendingEnquiries).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Dispatch{}).
		Where("status IN ?", []string{entity.DispatchStatusPending, entity.DispatchStatusInTransit}).
		Count(&s.ActiveDispatches).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// RecentSales backs the analytics recent-activity panel.
func (r *DashboardRepository) RecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	if limit <= 0 {
		limit = 10
	}
	var sales []entity.Sale
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).Preload("Customer").
		Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *DashboardRepository) RecentTickets(ctx context.Context, limit int) ([]entity.ServiceTicket, error) {
	if limit <= 0 {
		limit = 10
	}
	var tickets []entity.ServiceTicket
	err := r.db.WithContext(ctx).Model(&entity.ServiceTicket{}).Preload("Customer").
		Order("created_at DESC").Limit(limit).Find(&tickets).Error
	return tickets, err
}
