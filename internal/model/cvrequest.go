package model

// CV request statuses.
const (
	CVPending    = "pending"
	CVInProgress = "in_progress"
	CVCompleted  = "completed"
	CVRejected   = "rejected"
)

// CVStatuses lists the statuses an admin can pick.
var CVStatuses = []string{CVPending, CVInProgress, CVCompleted, CVRejected}

// CVRequest is an employee's paid request for a professionally written CV.
type CVRequest struct {
	ID            int64     `json:"id"`
	Employee      *Employee `json:"employee,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Price         Amount    `json:"price"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     Time      `json:"created_at"`
}

// EmployeeName is the requester's display name.
func (r CVRequest) EmployeeName() string {
	if r.Employee == nil || r.Employee.Name == "" {
		return "N/A"
	}
	return r.Employee.Name
}
