package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiMocks "jobadmin/internal/backend/mocks"
	"jobadmin/internal/model"
)

func TestPlanStatus(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	plan := &model.Plan{ID: 1}
	at := func(d time.Duration) model.Time { return model.Time{Time: now.Add(d)} }

	tests := []struct {
		name     string
		employer model.Employer
		want     PlanState
	}{
		{"no plan", model.Employer{}, PlanState{"No Plan", "default"}},
		{"inactive", model.Employer{Plan: plan}, PlanState{"Inactive", "error"}},
		{"expired", model.Employer{Plan: plan, PlanIsActive: true, PlanExpiresAt: at(-time.Hour)}, PlanState{"Expired", "error"}},
		{"expiring soon", model.Employer{Plan: plan, PlanIsActive: true, PlanExpiresAt: at(6 * 24 * time.Hour)}, PlanState{"Active", "warning"}},
		{"active", model.Employer{Plan: plan, PlanIsActive: true, PlanExpiresAt: at(30 * 24 * time.Hour)}, PlanState{"Active", "success"}},
		{"never expires", model.Employer{Plan: plan, PlanIsActive: true}, PlanState{"Active", "success"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanStatus(tt.employer, now))
		})
	}
}

func TestEmployerForm_Validate(t *testing.T) {
	valid := EmployerForm{
		CompanyName: "Acme", Email: "hr@acme.io", Contact: "12345", Password: "secret1", ConfirmPassword: "secret1",
		IndustryTypeID: 2, Street: "1 Road", City: "Pune", State: "MH", Zip: "411001", Country: "India",
	}
	assert.NoError(t, valid.Validate())

	noIndustry := valid
	noIndustry.IndustryTypeID = 0
	assert.EqualError(t, noIndustry.Validate(), "Please fill all required fields")

	mismatch := valid
	mismatch.ConfirmPassword = "nope"
	assert.EqualError(t, mismatch.Validate(), "Passwords do not match")

	short := valid
	short.Password, short.ConfirmPassword = "abc", "abc"
	assert.EqualError(t, short.Validate(), "Password must be at least 6 characters")

	noZip := valid
	noZip.Zip = ""
	assert.EqualError(t, noZip.Validate(), "Please fill all address fields")
}

func TestEmployerService_Create(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("CreateEmployer", ctx, mock.MatchedBy(func(in model.NewEmployer) bool {
		return in.IndustryTypeID == 2 && in.Address.Country == "India"
	})).Return(&model.Employer{ID: 8}, nil)

	e, err := NewEmployerService(api).Create(ctx, EmployerForm{
		CompanyName: "Acme", Email: "hr@acme.io", Contact: "12345", Password: "secret1", ConfirmPassword: "secret1",
		IndustryTypeID: 2, Street: "1 Road", City: "Pune", State: "MH", Zip: "411001", Country: "India",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), e.ID)
	api.AssertExpectations(t)
}

func TestEmployerService_UpgradeCandidates(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("ListPlans", ctx).Return([]model.Plan{
		{ID: 1, Type: "employer", IsDefault: true},
		{ID: 2, Type: "employer"},
		{ID: 3, Type: "employee"},
	}, nil)

	plans, err := NewEmployerService(api).UpgradeCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, int64(2), plans[0].ID)
}

func TestEmployerService_UpgradePlan(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("UpgradeEmployerPlan", ctx, int64(4), model.PlanUpgrade{PlanID: 2}).Return(nil)

	svc := NewEmployerService(api)
	assert.ErrorIs(t, svc.UpgradePlan(ctx, 4, 0), ErrValidation)
	assert.NoError(t, svc.UpgradePlan(ctx, 4, 2))
	api.AssertExpectations(t)
}
