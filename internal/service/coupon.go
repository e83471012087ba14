package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
	"jobadmin/internal/rbac"
)

// CouponForm is the create-coupon dialog. ExpiryDate is optional.
type CouponForm struct {
	Code               string     `json:"code"`
	DiscountPercentage float64    `json:"discount_percentage"`
	ExpiryDate         *time.Time `json:"expiry_date"`
}

func (f CouponForm) Validate() error {
	if strings.TrimSpace(f.Code) == "" {
		return invalid("Coupon code is required")
	}
	if f.DiscountPercentage < 0 || f.DiscountPercentage > 100 {
		return invalid("Discount must be between 0 and 100")
	}
	return nil
}

// Payload stamps the creating admin as the coupon's staff owner.
func (f CouponForm) Payload(staffID int64) model.NewCoupon {
	in := model.NewCoupon{
		Code:               strings.TrimSpace(f.Code),
		DiscountPercentage: f.DiscountPercentage,
		StaffID:            staffID,
	}
	if f.ExpiryDate != nil {
		d := model.NewDate(*f.ExpiryDate).String()
		in.ExpiryDate = &d
	}
	return in
}

type CouponService interface {
	List(ctx context.Context) ([]model.Coupon, error)
	Pending(ctx context.Context) ([]model.Coupon, error)
	Details(ctx context.Context, id int64) (*model.CouponDetails, error)
	Create(ctx context.Context, actor model.Admin, f CouponForm) (*model.Coupon, error)
	Delete(ctx context.Context, id int64) error
	// Review approves or rejects a pending coupon. Only a super admin may review.
	Review(ctx context.Context, role string, id int64, status string) error
	// Assign gives an approved coupon to users identified by email or mobile.
	Assign(ctx context.Context, id int64, identifiers []string) (*model.AssignResult, error)
	Unassign(ctx context.Context, couponID, assignmentID int64) error
}

type couponService struct {
	api backend.API
}

func NewCouponService(api backend.API) CouponService {
	return &couponService{api: api}
}

func (s *couponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.api.ListCoupons(ctx)
}

func (s *couponService) Pending(ctx context.Context) ([]model.Coupon, error) {
	return s.api.PendingCoupons(ctx)
}

func (s *couponService) Details(ctx context.Context, id int64) (*model.CouponDetails, error) {
	return s.api.GetCoupon(ctx, id)
}

func (s *couponService) Create(ctx context.Context, actor model.Admin, f CouponForm) (*model.Coupon, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateCoupon(ctx, f.Payload(actor.ID))
}

func (s *couponService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteCoupon(ctx, id)
}

func (s *couponService) Review(ctx context.Context, role string, id int64, status string) error {
	if !rbac.IsSuperAdmin(role) {
		return ErrForbidden
	}
	if status != model.CouponApproved && status != model.CouponRejected {
		return invalid("Status must be approved or rejected")
	}

	details, err := s.api.GetCoupon(ctx, id)
	if err != nil {
		return err
	}
	if details.Coupon.Status != model.CouponPending {
		return fmt.Errorf("%w: %s", ErrNotPending, details.Coupon.Status)
	}
	return s.api.ReviewCoupon(ctx, id, status)
}

func (s *couponService) Assign(ctx context.Context, id int64, identifiers []string) (*model.AssignResult, error) {
	details, err := s.api.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}
	if details.Coupon.Status != model.CouponApproved {
		return nil, ErrNotApproved
	}

	users := []model.AssignUser{}
	for _, ident := range identifiers {
		if ident = strings.TrimSpace(ident); ident != "" {
			users = append(users, model.AssignUser{Identifier: ident, Type: details.Coupon.CouponFor})
		}
	}
	if len(users) == 0 {
		return nil, invalid("Enter at least one email or mobile number")
	}
	return s.api.AssignCouponUsers(ctx, id, users)
}

func (s *couponService) Unassign(ctx context.Context, couponID, assignmentID int64) error {
	return s.api.RemoveCouponUser(ctx, couponID, assignmentID)
}
