package model

import "time"

const (
	CouponPending  = "pending"
	CouponApproved = "approved"
	CouponRejected = "rejected"
)

// Coupon is a discount code created by staff and approved by a super admin.
type Coupon struct {
	ID                 int64  `json:"id"`
	Code               string `json:"code"`
	Name               string `json:"name,omitempty"`
	DiscountPercentage Amount `json:"discount_percentage"`
	ExpiryDate         Date   `json:"expiry_date"`
	CouponFor          string `json:"coupon_for,omitempty"`
	Status             string `json:"status,omitempty"`
	StaffID            int64  `json:"staff_id,omitempty"`
	Staff              *Admin `json:"staff,omitempty"`
	Approver           *Admin `json:"approver,omitempty"`
	CreatedAt          Time   `json:"created_at"`
}

// Expired reports whether the coupon's expiry date is not after now.
func (c Coupon) Expired(now time.Time) bool {
	if c.ExpiryDate.IsZero() {
		return false
	}
	return !c.ExpiryDate.After(now)
}

// NewCoupon is the create payload.
type NewCoupon struct {
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discount_percentage"`
	ExpiryDate         *string `json:"expiry_date"`
	StaffID            int64   `json:"staff_id"`
}

// CouponDetails is GET /admin/coupons/{id}.
type CouponDetails struct {
	Coupon        Coupon             `json:"coupon"`
	AssignedUsers []CouponAssignment `json:"assigned_users"`
}

// CouponAssignment links a user to an approved coupon.
type CouponAssignment struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier,omitempty"`
	Type       string `json:"type,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	AssignedAt Time   `json:"assigned_at"`
}

// AssignUser is one row of the assign dialog. Type always equals the coupon's coupon_for.
type AssignUser struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
}

// AssignFailure explains why an identifier could not be assigned.
type AssignFailure struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

// AssignResult is the backend's answer to an assignment request.
type AssignResult struct {
	Assigned []CouponAssignment `json:"assigned"`
	Failed   []AssignFailure    `json:"failed"`
}
