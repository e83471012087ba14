package model

const (
	CommissionCouponBased = "coupon_based"
	CommissionManual      = "manual"
)

// Commission is earned by staff on a paid transaction.
type Commission struct {
	ID                 int64   `json:"id"`
	Staff              *Admin  `json:"staff,omitempty"`
	AmountEarned       Amount  `json:"amount_earned"`
	TransactionAmount  Amount  `json:"transaction_amount"`
	DiscountAmount     Amount  `json:"discount_amount"`
	DiscountPercentage Amount  `json:"discount_percentage"`
	Type               string  `json:"type"`
	Coupon             *Coupon `json:"coupon,omitempty"`
	CreatedAt          Time    `json:"created_at"`
}

// StaffName is the display name of the earning staff member.
func (c Commission) StaffName() string {
	if c.Staff == nil || c.Staff.Name == "" {
		return "N/A"
	}
	return c.Staff.Name
}

// CouponCode is the display code of the coupon the commission came from.
func (c Commission) CouponCode() string {
	if c.Coupon == nil || c.Coupon.Code == "" {
		return "-"
	}
	return c.Coupon.Code
}

// CommissionFilter narrows the all/team commission lists.
type CommissionFilter struct {
	StaffID   string
	Type      string
	StartDate string
	EndDate   string
	Page      int
	PerPage   int
}

// CommissionList is the normalized commission screen data.
type CommissionList struct {
	Items         []Commission `json:"items"`
	Total         int          `json:"total"`
	TotalEarnings Amount       `json:"total_earnings"`
	StaffList     []Admin      `json:"staff_list,omitempty"`
}

// ManualCommission is the body of POST /admin/commissions/manual.
type ManualCommission struct {
	StaffID           int64   `json:"staff_id"`
	AmountEarned      float64 `json:"amount_earned"`
	TransactionAmount float64 `json:"transaction_amount,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}
