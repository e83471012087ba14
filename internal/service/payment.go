package service

import (
	"context"
	"math"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

// PaymentSummary is the statistics tab.
type PaymentSummary struct {
	model.PaymentStats
	SuccessRate float64 `json:"success_rate"`
}

// SuccessRate is successful/total as a percentage with one decimal, 0 without transactions.
func SuccessRate(successful, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(successful)/float64(total)*1000) / 10
}

type PaymentService interface {
	Orders(ctx context.Context, q model.ListQuery) (*model.Page[model.PlanOrder], error)
	Order(ctx context.Context, id int64) (*model.PlanOrder, error)
	Transactions(ctx context.Context, q model.ListQuery) (*model.Page[model.PaymentTransaction], error)
	Transaction(ctx context.Context, id int64) (*model.PaymentTransaction, error)
	Stats(ctx context.Context) (*PaymentSummary, error)
}

type paymentService struct {
	api backend.API
}

func NewPaymentService(api backend.API) PaymentService {
	return &paymentService{api: api}
}

func (s *paymentService) Orders(ctx context.Context, q model.ListQuery) (*model.Page[model.PlanOrder], error) {
	return s.api.ListPlanOrders(ctx, normalizeQuery(q))
}

func (s *paymentService) Order(ctx context.Context, id int64) (*model.PlanOrder, error) {
	return s.api.GetPlanOrder(ctx, id)
}

func (s *paymentService) Transactions(ctx context.Context, q model.ListQuery) (*model.Page[model.PaymentTransaction], error) {
	return s.api.ListPaymentTransactions(ctx, normalizeQuery(q))
}

func (s *paymentService) Transaction(ctx context.Context, id int64) (*model.PaymentTransaction, error) {
	return s.api.GetPaymentTransaction(ctx, id)
}

func (s *paymentService) Stats(ctx context.Context) (*PaymentSummary, error) {
	stats, err := s.api.PaymentStats(ctx)
	if err != nil {
		return nil, err
	}
	return &PaymentSummary{
		PaymentStats: *stats,
		SuccessRate:  SuccessRate(stats.SuccessfulTransactions, stats.TotalTransactions),
	}, nil
}

type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardService struct {
	api backend.API
}

func NewDashboardService(api backend.API) DashboardService {
	return &dashboardService{api: api}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.api.DashboardStats(ctx)
}
