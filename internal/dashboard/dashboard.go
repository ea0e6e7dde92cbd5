// Package dashboard aggregates read-only reporting views over the store.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

const (
	chartWindow    = 180 * 24 * time.Hour
	topProductsCap = 5
	recentCap      = 5
)

// Service computes dashboard views
type Service struct {
	db storage.Storage
}

// NewService creates a dashboard service
func NewService(db storage.Storage) *Service {
	return &Service{db: db}
}

// Summary is the headline view: entity counts plus revenue figures
type Summary struct {
	TotalUsers      int64           `json:"total_users"`
	TotalEmployees  int64           `json:"total_employees"`
	TotalProducts   int64           `json:"total_products"`
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	CompletedOrders int64           `json:"completed_orders"`
	CancelledOrders int64           `json:"cancelled_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	DueRevenue      decimal.Decimal `json:"due_revenue"`
}

// Summary returns counts for every entity, realized revenue over completed
// orders and outstanding revenue over pending ones.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.db.CountEntities(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.db.SumOrderTotals(ctx, types.OrderCompleted)
	if err != nil {
		return nil, err
	}

	due, err := s.db.SumOrderTotals(ctx, types.OrderPending)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalUsers:      counts.Users,
		TotalEmployees:  counts.Employees,
		TotalProducts:   counts.Products,
		TotalOrders:     counts.Orders,
		PendingOrders:   counts.PendingOrders,
		CompletedOrders: counts.CompletedOrders,
		CancelledOrders: counts.CancelledOrders,
		TotalRevenue:    revenue,
		DueRevenue:      due,
	}, nil
}

// Charts holds the time-series and ranking views
type Charts struct {
	OrdersPerMonth []storage.MonthCount        `json:"orders_per_month"`
	TopProducts    []storage.ProductOrderCount `json:"top_products"`
}

// Charts returns orders bucketed per month over the trailing 180 days and
// the five products appearing on the most order lines.
func (s *Service) Charts(ctx context.Context) (*Charts, error) {
	since := time.Now().Add(-chartWindow)

	perMonth, err := s.db.OrdersPerMonth(ctx, since)
	if err != nil {
		return nil, err
	}

	top, err := s.db.TopProducts(ctx, topProductsCap)
	if err != nil {
		return nil, err
	}

	return &Charts{OrdersPerMonth: perMonth, TopProducts: top}, nil
}

// Activity lists the most recent orders, users and employees
type Activity struct {
	RecentOrders    []*types.Order    `json:"recent_orders"`
	RecentUsers     []*types.User     `json:"recent_users"`
	RecentEmployees []*types.Employee `json:"recent_employees"`
}

// Activity returns the five most recent entries of each kind
func (s *Service) Activity(ctx context.Context) (*Activity, error) {
	recentOrders, err := s.db.ListOrders(ctx, storage.OrderFilter{Recent: true, Limit: recentCap})
	if err != nil {
		return nil, err
	}

	recentUsers, err := s.db.ListUsers(ctx, storage.UserFilter{Recent: true, Limit: recentCap})
	if err != nil {
		return nil, err
	}

	recentEmployees, err := s.db.ListEmployees(ctx, storage.EmployeeFilter{Recent: true, Limit: recentCap})
	if err != nil {
		return nil, err
	}

	return &Activity{
		RecentOrders:    recentOrders,
		RecentUsers:     recentUsers,
		RecentEmployees: recentEmployees,
	}, nil
}
