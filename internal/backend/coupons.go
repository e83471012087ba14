package backend

import (
	"context"
	"net/http"

	"jobadmin/internal/model"
)

type couponsEnvelope struct {
	Coupons model.Page[model.Coupon] `json:"coupons"`
}

type couponEnvelope struct {
	Coupon model.Coupon `json:"coupon"`
}

func (c *Client) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	var out couponsEnvelope
	if err := c.do(ctx, request{name: "coupons.list", method: http.MethodGet, path: "/admin/coupons"}, &out); err != nil {
		return nil, err
	}
	return out.Coupons.Data, nil
}

func (c *Client) PendingCoupons(ctx context.Context) ([]model.Coupon, error) {
	var out couponsEnvelope
	if err := c.do(ctx, request{name: "coupons.pending", method: http.MethodGet, path: "/admin/coupons/pending"}, &out); err != nil {
		return nil, err
	}
	return out.Coupons.Data, nil
}

// GetCoupon returns the coupon with its assigned users.
func (c *Client) GetCoupon(ctx context.Context, id int64) (*model.CouponDetails, error) {
	var out model.CouponDetails
	if err := c.do(ctx, request{name: "coupons.get", method: http.MethodGet, path: pathf("/admin/coupons/%s", id)}, &out); err != nil {
		return nil, err
	}
	if out.AssignedUsers == nil {
		out.AssignedUsers = []model.CouponAssignment{}
	}
	return &out, nil
}

func (c *Client) CreateCoupon(ctx context.Context, in model.NewCoupon) (*model.Coupon, error) {
	var out couponEnvelope
	if err := c.do(ctx, request{name: "coupons.create", method: http.MethodPost, path: "/admin/coupons", body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Coupon, nil
}

func (c *Client) UpdateCoupon(ctx context.Context, id int64, in model.NewCoupon) (*model.Coupon, error) {
	var out couponEnvelope
	if err := c.do(ctx, request{name: "coupons.update", method: http.MethodPut, path: pathf("/admin/coupons/%s", id), body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Coupon, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id int64) error {
	return c.do(ctx, request{name: "coupons.delete", method: http.MethodDelete, path: pathf("/admin/coupons/%s", id)}, nil)
}

// ReviewCoupon approves or rejects a pending coupon.
func (c *Client) ReviewCoupon(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, request{name: "coupons.approve", method: http.MethodPost, path: pathf("/admin/coupons/%s/approve", id), body: body}, nil)
}

func (c *Client) AssignCouponUsers(ctx context.Context, id int64, users []model.AssignUser) (*model.AssignResult, error) {
	body := map[string][]model.AssignUser{"users": users}
	var out model.AssignResult
	if err := c.do(ctx, request{name: "coupons.assign", method: http.MethodPost, path: pathf("/admin/coupons/%s/assign", id), body: body}, &out); err != nil {
		return nil, err
	}
	if out.Assigned == nil {
		out.Assigned = []model.CouponAssignment{}
	}
	if out.Failed == nil {
		out.Failed = []model.AssignFailure{}
	}
	return &out, nil
}

func (c *Client) RemoveCouponUser(ctx context.Context, couponID, assignmentID int64) error {
	return c.do(ctx, request{name: "coupons.unassign", method: http.MethodDelete, path: pathf("/admin/coupons/%s/users/%s", couponID, assignmentID)}, nil)
}
