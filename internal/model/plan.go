package model

// Unlimited marks a plan limit without a cap.
const Unlimited = -1

// Plan types.
const (
	PlanForEmployee = "employee"
	PlanForEmployer = "employer"
)

// Plan is a subscription tier.
type Plan struct {
	ID                            int64         `json:"id"`
	Name                          string        `json:"name"`
	Type                          string        `json:"type"`
	Price                         Amount        `json:"price"`
	ValidityDays                  int           `json:"validity_days"`
	Description                   string        `json:"description,omitempty"`
	IsDefault                     bool          `json:"is_default"`
	JobsCanPost                   int           `json:"jobs_can_post"`
	EmployeeContactDetailsCanView int           `json:"employee_contact_details_can_view"`
	Features                      []PlanFeature `json:"features,omitempty"`
}

// LimitLabel renders a plan limit, "Unlimited" for -1.
func LimitLabel(n int) string {
	if n == Unlimited {
		return "Unlimited"
	}
	return itoa(n)
}

// PlanFeature is an extra line item of a plan.
type PlanFeature struct {
	ID           int64  `json:"id"`
	FeatureName  string `json:"feature_name"`
	FeatureValue string `json:"feature_value"`
}

// PlanInput is the create/update payload for a plan.
type PlanInput struct {
	Name                          string  `json:"name"`
	Type                          string  `json:"type"`
	Price                         float64 `json:"price"`
	ValidityDays                  int     `json:"validity_days"`
	Description                   string  `json:"description,omitempty"`
	IsDefault                     bool    `json:"is_default"`
	JobsCanPost                   int     `json:"jobs_can_post"`
	EmployeeContactDetailsCanView int     `json:"employee_contact_details_can_view"`
}

// FeatureInput adds a feature to a plan.
type FeatureInput struct {
	FeatureName  string `json:"feature_name"`
	FeatureValue string `json:"feature_value"`
}
