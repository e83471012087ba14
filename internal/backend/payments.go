package backend

import (
	"context"
	"net/http"

	"jobadmin/internal/model"
)

func (c *Client) ListPlanOrders(ctx context.Context, q model.ListQuery) (*model.Page[model.PlanOrder], error) {
	var out struct {
		Orders model.Page[model.PlanOrder] `json:"orders"`
	}
	if err := c.do(ctx, request{name: "orders.list", method: http.MethodGet, path: "/admin/plan-orders", query: listValues(q)}, &out); err != nil {
		return nil, err
	}
	return &out.Orders, nil
}

func (c *Client) GetPlanOrder(ctx context.Context, id int64) (*model.PlanOrder, error) {
	var out struct {
		Order model.PlanOrder `json:"order"`
	}
	if err := c.do(ctx, request{name: "orders.get", method: http.MethodGet, path: pathf("/admin/plan-orders/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (c *Client) ListPaymentTransactions(ctx context.Context, q model.ListQuery) (*model.Page[model.PaymentTransaction], error) {
	var out struct {
		Transactions model.Page[model.PaymentTransaction] `json:"transactions"`
	}
	r := request{name: "transactions.list", method: http.MethodGet, path: "/admin/payment-transactions", query: listValues(q)}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out.Transactions, nil
}

func (c *Client) GetPaymentTransaction(ctx context.Context, id int64) (*model.PaymentTransaction, error) {
	var out struct {
		Transaction model.PaymentTransaction `json:"transaction"`
	}
	if err := c.do(ctx, request{name: "transactions.get", method: http.MethodGet, path: pathf("/admin/payment-transactions/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

func (c *Client) PaymentStats(ctx context.Context) (*model.PaymentStats, error) {
	var out model.PaymentStats
	if err := c.do(ctx, request{name: "payments.stats", method: http.MethodGet, path: "/admin/payment-stats"}, &out); err != nil {
		return nil, err
	}
	if out.MonthlyRevenue == nil {
		out.MonthlyRevenue = []model.MonthlyRevenue{}
	}
	return &out, nil
}
