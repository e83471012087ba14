package service

import (
	"context"
	"strings"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

type PlanService interface {
	List(ctx context.Context) ([]model.Plan, error)
	Create(ctx context.Context, in model.PlanInput) (*model.Plan, error)
	Update(ctx context.Context, id int64, in model.PlanInput) error
	Delete(ctx context.Context, id int64) error
	AddFeature(ctx context.Context, planID int64, in model.FeatureInput) error
	DeleteFeature(ctx context.Context, featureID int64) error
}

type planService struct {
	api backend.API
}

func NewPlanService(api backend.API) PlanService {
	return &planService{api: api}
}

func (s *planService) List(ctx context.Context) ([]model.Plan, error) {
	return s.api.ListPlans(ctx)
}

func (s *planService) Create(ctx context.Context, in model.PlanInput) (*model.Plan, error) {
	if err := validatePlan(in); err != nil {
		return nil, err
	}
	return s.api.CreatePlan(ctx, in)
}

func (s *planService) Update(ctx context.Context, id int64, in model.PlanInput) error {
	if err := validatePlan(in); err != nil {
		return err
	}
	return s.api.UpdatePlan(ctx, id, in)
}

func (s *planService) Delete(ctx context.Context, id int64) error {
	return s.api.DeletePlan(ctx, id)
}

func (s *planService) AddFeature(ctx context.Context, planID int64, in model.FeatureInput) error {
	if strings.TrimSpace(in.FeatureName) == "" {
		return invalid("Feature name is required")
	}
	return s.api.AddPlanFeature(ctx, planID, in)
}

func (s *planService) DeleteFeature(ctx context.Context, featureID int64) error {
	return s.api.DeletePlanFeature(ctx, featureID)
}

// validatePlan accepts -1 as unlimited for both limits.
func validatePlan(in model.PlanInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("Plan name is required")
	}
	if in.Type != model.PlanForEmployee && in.Type != model.PlanForEmployer {
		return invalid("Plan type must be employee or employer")
	}
	if in.Price < 0 || in.ValidityDays < 0 {
		return invalid("Price and validity cannot be negative")
	}
	if in.JobsCanPost < model.Unlimited || in.EmployeeContactDetailsCanView < model.Unlimited {
		return invalid("Limits must be -1 (unlimited) or greater")
	}
	return nil
}
