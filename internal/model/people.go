package model

// Address is shared by employees and employers.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Employee is a job seeker account.
type Employee struct {
	ID                          int64    `json:"id"`
	Name                        string   `json:"name"`
	Email                       string   `json:"email"`
	Mobile                      string   `json:"mobile"`
	Gender                      string   `json:"gender"`
	DOB                         Date     `json:"dob"`
	Address                     *Address `json:"address,omitempty"`
	CVURL                       string   `json:"cv_url,omitempty"`
	Plan                        *Plan    `json:"plan,omitempty"`
	ProfilePhotoURL             string   `json:"profile_photo_url,omitempty"`
	ProfilePhotoFullURL         string   `json:"profile_photo_full_url,omitempty"`
	ProfilePhotoStatus          string   `json:"profile_photo_status,omitempty"`
	ProfilePhotoRejectionReason string   `json:"profile_photo_rejection_reason,omitempty"`
	CreatedAt                   Time     `json:"created_at"`
}

// Employer is a company account that posts jobs.
type Employer struct {
	ID            int64        `json:"id"`
	CompanyName   string       `json:"company_name"`
	Email         string       `json:"email"`
	Contact       string       `json:"contact"`
	Website       string       `json:"website,omitempty"`
	Address       *Address     `json:"address,omitempty"`
	Industry      *CatalogItem `json:"industry,omitempty"`
	Plan          *Plan        `json:"plan,omitempty"`
	PlanIsActive  bool         `json:"plan_is_active"`
	PlanExpiresAt Time         `json:"plan_expires_at"`
	Jobs          []Job        `json:"jobs,omitempty"`
	CreatedAt     Time         `json:"created_at"`
}

// EducationEntry is one education row of the employee wizard.
type EducationEntry struct {
	Degree           string `json:"degree"`
	University       string `json:"university"`
	Field            string `json:"field"`
	YearStart        string `json:"year_start,omitempty"`
	YearEnd          string `json:"year_end,omitempty"`
	EducationLevelID *int64 `json:"education_level_id"`
}

// ExperienceEntry is one work-experience row of the employee wizard.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	YearStart   string `json:"year_start,omitempty"`
	YearEnd     string `json:"year_end,omitempty"`
	MonthStart  string `json:"month_start,omitempty"`
	MonthEnd    string `json:"month_end,omitempty"`
}

// NewEmployee is the payload for POST /admin/employees. Skills mixes catalog IDs (numbers)
// and custom skill names (strings).
type NewEmployee struct {
	Email      string            `json:"email"`
	Mobile     string            `json:"mobile"`
	Name       string            `json:"name"`
	Password   string            `json:"password"`
	Gender     string            `json:"gender"`
	DOB        string            `json:"dob"`
	Address    Address           `json:"address"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []any             `json:"skills"`
}

// NewEmployer is the payload for POST /admin/employers.
type NewEmployer struct {
	CompanyName    string  `json:"company_name"`
	Email          string  `json:"email"`
	Contact        string  `json:"contact"`
	Password       string  `json:"password"`
	IndustryTypeID int64   `json:"industry_type_id"`
	Address        Address `json:"address"`
}

// PlanUpgrade is the body of the upgrade-plan endpoints.
type PlanUpgrade struct {
	PlanID int64 `json:"plan_id"`
}

// EmployeeUpdate is the body of PUT /admin/employees/{id}.
type EmployeeUpdate struct {
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Mobile  string   `json:"mobile,omitempty"`
	Gender  string   `json:"gender,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// EmployerUpdate is the body of PUT /admin/employers/{id}.
type EmployerUpdate struct {
	CompanyName string   `json:"company_name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Contact     string   `json:"contact,omitempty"`
	Website     string   `json:"website,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// PhotoList is GET /admin/profile-photos.
type PhotoList struct {
	Employees []Employee `json:"employees"`
	Count     int        `json:"count"`
}

// Profile photo review statuses.
const (
	PhotoPending  = "pending"
	PhotoApproved = "approved"
	PhotoRejected = "rejected"
	PhotoAll      = "all"
)
