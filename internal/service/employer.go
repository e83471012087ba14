package service

import (
	"context"
	"time"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

// EmployerForm is the add-employer dialog.
type EmployerForm struct {
	CompanyName     string `json:"company_name"`
	Email           string `json:"email"`
	Contact         string `json:"contact"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	IndustryTypeID  int64  `json:"industry_type_id"`
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Country         string `json:"country"`
}

func (f EmployerForm) Validate() error {
	if f.CompanyName == "" || f.Email == "" || f.Contact == "" || f.Password == "" || f.IndustryTypeID == 0 {
		return invalid(msgRequiredFields)
	}
	if f.Password != f.ConfirmPassword {
		return invalid(msgPasswordMismatch)
	}
	if len(f.Password) < minPasswordLen {
		return invalid(msgPasswordShort)
	}
	if f.Street == "" || f.City == "" || f.State == "" || f.Zip == "" || f.Country == "" {
		return invalid(msgAddressFields)
	}
	return nil
}

func (f EmployerForm) payload() model.NewEmployer {
	return model.NewEmployer{
		CompanyName:    f.CompanyName,
		Email:          f.Email,
		Contact:        f.Contact,
		Password:       f.Password,
		IndustryTypeID: f.IndustryTypeID,
		Address: model.Address{
			Street:  f.Street,
			City:    f.City,
			State:   f.State,
			Zip:     f.Zip,
			Country: f.Country,
		},
	}
}

// PlanState is the plan chip of an employer row.
type PlanState struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const expiringSoon = 7 * 24 * time.Hour

// PlanStatus classifies an employer's plan at now. An active plan expiring within seven days
// keeps the Active label but turns the colour to warning.
func PlanStatus(e model.Employer, now time.Time) PlanState {
	switch {
	case e.Plan == nil:
		return PlanState{Label: "No Plan", Color: "default"}
	case !e.PlanIsActive:
		return PlanState{Label: "Inactive", Color: "error"}
	case !e.PlanExpiresAt.IsZero() && e.PlanExpiresAt.Before(now):
		return PlanState{Label: "Expired", Color: "error"}
	case !e.PlanExpiresAt.IsZero() && e.PlanExpiresAt.Sub(now) < expiringSoon:
		return PlanState{Label: "Active", Color: "warning"}
	}
	return PlanState{Label: "Active", Color: "success"}
}

type EmployerService interface {
	List(ctx context.Context, q model.ListQuery) (*model.Page[model.Employer], error)
	Get(ctx context.Context, id int64) (*model.Employer, error)
	Update(ctx context.Context, id int64, in model.EmployerUpdate) error
	Delete(ctx context.Context, id int64) error
	Create(ctx context.Context, f EmployerForm) (*model.Employer, error)
	Industries(ctx context.Context) ([]model.CatalogItem, error)
	// UpgradeCandidates lists the employer plans an admin may switch to: non-default employer plans.
	UpgradeCandidates(ctx context.Context) ([]model.Plan, error)
	UpgradePlan(ctx context.Context, id, planID int64) error
}

type employerService struct {
	api backend.API
}

func NewEmployerService(api backend.API) EmployerService {
	return &employerService{api: api}
}

func (s *employerService) List(ctx context.Context, q model.ListQuery) (*model.Page[model.Employer], error) {
	return s.api.ListEmployers(ctx, normalizeQuery(q))
}

func (s *employerService) Get(ctx context.Context, id int64) (*model.Employer, error) {
	return s.api.GetEmployer(ctx, id)
}

func (s *employerService) Update(ctx context.Context, id int64, in model.EmployerUpdate) error {
	return s.api.UpdateEmployer(ctx, id, in)
}

func (s *employerService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteEmployer(ctx, id)
}

func (s *employerService) Create(ctx context.Context, f EmployerForm) (*model.Employer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateEmployer(ctx, f.payload())
}

func (s *employerService) Industries(ctx context.Context) ([]model.CatalogItem, error) {
	return s.api.ListCatalog(ctx, model.Industries)
}

func (s *employerService) UpgradeCandidates(ctx context.Context) ([]model.Plan, error) {
	plans, err := s.api.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Plan{}
	for _, p := range plans {
		if p.Type == model.PlanForEmployer && !p.IsDefault {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *employerService) UpgradePlan(ctx context.Context, id, planID int64) error {
	if planID == 0 {
		return invalid("Please select a plan")
	}
	return s.api.UpgradeEmployerPlan(ctx, id, model.PlanUpgrade{PlanID: planID})
}
