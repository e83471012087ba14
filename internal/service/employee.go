package service

import (
	"context"
	"strings"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

// Wizard steps of the add-employee dialog.
const (
	StepBasicInfo = iota
	StepPersonalDetails
	StepProfessionalInfo
)

type BasicInfo struct {
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Gender          string `json:"gender"`
}

func (b BasicInfo) Validate() error {
	if b.Email == "" || b.Mobile == "" || b.Name == "" || b.Password == "" {
		return invalid(msgRequiredFields)
	}
	if b.Password != b.ConfirmPassword {
		return invalid(msgPasswordMismatch)
	}
	if len(b.Password) < minPasswordLen {
		return invalid(msgPasswordShort)
	}
	return nil
}

type PersonalDetails struct {
	DOB     string `json:"dob"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (p PersonalDetails) Validate() error {
	if p.DOB == "" || p.Street == "" || p.City == "" || p.State == "" || p.Zip == "" || p.Country == "" {
		return invalid(msgRequiredFields)
	}
	if _, err := model.ParseDate(p.DOB); err != nil {
		return invalid("Date of birth must be YYYY-MM-DD")
	}
	return nil
}

// EmployeeDraft holds everything the wizard collects before submission.
type EmployeeDraft struct {
	Basic      BasicInfo               `json:"basic"`
	Personal   PersonalDetails         `json:"personal"`
	Education  []model.EducationEntry  `json:"education"`
	Experience []model.ExperienceEntry `json:"experience"`
	Skills     SkillPicker             `json:"skills"`
}

// ValidateStep checks the fields of one wizard step. The professional step has no required fields.
func (d *EmployeeDraft) ValidateStep(step int) error {
	switch step {
	case StepBasicInfo:
		return d.Basic.Validate()
	case StepPersonalDetails:
		return d.Personal.Validate()
	}
	return nil
}

// Payload builds the create request. Incomplete education and experience rows are dropped.
func (d *EmployeeDraft) Payload() model.NewEmployee {
	education := []model.EducationEntry{}
	for _, e := range d.Education {
		if e.Degree != "" && e.University != "" && e.Field != "" {
			education = append(education, e)
		}
	}
	experience := []model.ExperienceEntry{}
	for _, e := range d.Experience {
		if e.Company != "" && e.Title != "" {
			experience = append(experience, e)
		}
	}
	return model.NewEmployee{
		Email:    d.Basic.Email,
		Mobile:   d.Basic.Mobile,
		Name:     d.Basic.Name,
		Password: d.Basic.Password,
		Gender:   d.Basic.Gender,
		DOB:      d.Personal.DOB,
		Address: model.Address{
			Street:  d.Personal.Street,
			City:    d.Personal.City,
			State:   d.Personal.State,
			Zip:     d.Personal.Zip,
			Country: d.Personal.Country,
		},
		Education:  education,
		Experience: experience,
		Skills:     d.Skills.Values(),
	}
}

// WizardCatalogs are the option lists of the professional step.
type WizardCatalogs struct {
	Skills          []model.CatalogItem `json:"skills"`
	Degrees         []model.CatalogItem `json:"degrees"`
	Universities    []model.CatalogItem `json:"universities"`
	FieldsOfStudy   []model.CatalogItem `json:"field_of_studies"`
	EducationLevels []model.CatalogItem `json:"education_levels"`
	Companies       []model.CatalogItem `json:"companies"`
	JobTitles       []model.CatalogItem `json:"job_titles"`
}

type EmployeeService interface {
	List(ctx context.Context, q model.ListQuery) (*model.Page[model.Employee], error)
	Get(ctx context.Context, id int64) (*model.Employee, error)
	Update(ctx context.Context, id int64, in model.EmployeeUpdate) error
	Delete(ctx context.Context, id int64) error
	UpgradePlan(ctx context.Context, id, planID int64) error
	// Catalogs loads the professional-step option lists in parallel.
	Catalogs(ctx context.Context) (*WizardCatalogs, error)
	// Create validates every step and submits the draft.
	Create(ctx context.Context, d *EmployeeDraft) (*model.Employee, error)
}

type employeeService struct {
	api backend.API
}

func NewEmployeeService(api backend.API) EmployeeService {
	return &employeeService{api: api}
}

func (s *employeeService) List(ctx context.Context, q model.ListQuery) (*model.Page[model.Employee], error) {
	return s.api.ListEmployees(ctx, normalizeQuery(q))
}

func (s *employeeService) Get(ctx context.Context, id int64) (*model.Employee, error) {
	return s.api.GetEmployee(ctx, id)
}

func (s *employeeService) Update(ctx context.Context, id int64, in model.EmployeeUpdate) error {
	return s.api.UpdateEmployee(ctx, id, in)
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteEmployee(ctx, id)
}

func (s *employeeService) UpgradePlan(ctx context.Context, id, planID int64) error {
	if planID == 0 {
		return invalid("Please select a plan")
	}
	return s.api.UpgradeEmployeePlan(ctx, id, model.PlanUpgrade{PlanID: planID})
}

func (s *employeeService) Catalogs(ctx context.Context) (*WizardCatalogs, error) {
	lists, err := loadCatalogs(ctx, s.api,
		model.Skills, model.Degrees, model.Universities, model.FieldsOfStudy,
		model.EducationLevels, model.Companies, model.JobTitles)
	if err != nil {
		return nil, err
	}
	levels := lists[model.EducationLevels]
	sortByOrder(levels)
	return &WizardCatalogs{
		Skills:          lists[model.Skills],
		Degrees:         lists[model.Degrees],
		Universities:    lists[model.Universities],
		FieldsOfStudy:   lists[model.FieldsOfStudy],
		EducationLevels: levels,
		Companies:       lists[model.Companies],
		JobTitles:       lists[model.JobTitles],
	}, nil
}

func (s *employeeService) Create(ctx context.Context, d *EmployeeDraft) (*model.Employee, error) {
	for _, step := range []int{StepBasicInfo, StepPersonalDetails, StepProfessionalInfo} {
		if err := d.ValidateStep(step); err != nil {
			return nil, err
		}
	}
	return s.api.CreateEmployee(ctx, d.Payload())
}

// normalizeQuery defaults to the first page and trims the search box.
func normalizeQuery(q model.ListQuery) model.ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}
