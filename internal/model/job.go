package model

// Job is a posting owned by an employer.
type Job struct {
	ID                int64        `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description,omitempty"`
	Salary            string       `json:"salary,omitempty"`
	Status            string       `json:"status,omitempty"`
	ApplicationsCount int          `json:"applications_count"`
	Employer          *Employer    `json:"employer,omitempty"`
	Location          *CatalogItem `json:"location,omitempty"`
	Category          *CatalogItem `json:"category,omitempty"`
	CreatedAt         Time         `json:"created_at"`
}

// NewJob is posted on behalf of an employer.
type NewJob struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Salary      string `json:"salary,omitempty"`
	LocationID  int64  `json:"location_id"`
	CategoryID  int64  `json:"category_id"`
}
