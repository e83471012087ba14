package model

// Order and transaction statuses.
const (
	OrderCreated   = "created"
	OrderPaid      = "paid"
	OrderFailed    = "failed"
	OrderCancelled = "cancelled"
	TxnSuccess     = "success"
)

// PlanOrder is a purchase of a plan by an employee or employer.
type PlanOrder struct {
	ID          int64               `json:"id"`
	OrderNumber string              `json:"order_number,omitempty"`
	Amount      Amount              `json:"amount"`
	Status      string              `json:"status"`
	Plan        *Plan               `json:"plan,omitempty"`
	Employee    *Employee           `json:"employee,omitempty"`
	Employer    *Employer           `json:"employer,omitempty"`
	Transaction *PaymentTransaction `json:"transaction,omitempty"`
	CreatedAt   Time                `json:"created_at"`
}

// Buyer names who placed the order.
func (o PlanOrder) Buyer() string {
	switch {
	case o.Employee != nil:
		return o.Employee.Name + " (Employee)"
	case o.Employer != nil:
		return o.Employer.CompanyName + " (Employer)"
	default:
		return "N/A"
	}
}

// PaymentTransaction is a gateway payment attempt for an order.
type PaymentTransaction struct {
	ID               int64      `json:"id"`
	TransactionID    string     `json:"transaction_id,omitempty"`
	PaymentID        string     `json:"payment_id,omitempty"`
	Amount           Amount     `json:"amount"`
	Status           string     `json:"status"`
	Method           string     `json:"method,omitempty"`
	ErrorDescription string     `json:"error_description,omitempty"`
	Order            *PlanOrder `json:"order,omitempty"`
	CreatedAt        Time       `json:"created_at"`
}

// MonthlyRevenue is one bucket of the revenue chart.
type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue Amount `json:"revenue"`
	Count   int    `json:"count,omitempty"`
}

// PaymentStats is GET /admin/payment-stats.
type PaymentStats struct {
	TotalRevenue           Amount           `json:"total_revenue"`
	TotalOrders            int              `json:"total_orders"`
	TotalTransactions      int              `json:"total_transactions"`
	SuccessfulTransactions int              `json:"successful_transactions"`
	FailedTransactions     int              `json:"failed_transactions"`
	MonthlyRevenue         []MonthlyRevenue `json:"monthly_revenue"`
}

// DashboardStats is GET /admin/dashboard/stats.
type DashboardStats struct {
	TotalEmployees   int    `json:"total_employees"`
	TotalEmployers   int    `json:"total_employers"`
	TotalJobs        int    `json:"total_jobs"`
	ActiveJobs       int    `json:"active_jobs"`
	TotalCVRequests  int    `json:"total_cv_requests"`
	PendingCoupons   int    `json:"pending_coupons"`
	TotalCommissions Amount `json:"total_commissions"`
}
