package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/backend"
	apiMocks "jobadmin/internal/backend/mocks"
	"jobadmin/internal/model"
)

func amount(v float64) *model.Amount {
	a := model.Amount(v)
	return &a
}

func TestCommissionScope(t *testing.T) {
	assert.Equal(t, ScopeAll, CommissionScope("super_admin", false))
	assert.Equal(t, ScopeTeam, CommissionScope("manager", false))
	assert.Equal(t, ScopeMine, CommissionScope("staff", false))
	assert.Equal(t, ScopeMine, CommissionScope("super_admin", true))
	assert.Equal(t, ScopeMine, CommissionScope("", false))
}

func TestCommissionService_List(t *testing.T) {
	ctx := context.Background()
	filter := model.CommissionFilter{Page: 1, PerPage: 10, Type: "manual"}

	t.Run("super admin sees all", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("AllCommissions", ctx, filter).Return(&backend.CommissionResponse{
			Commissions:   model.Page[model.Commission]{Data: []model.Commission{{ID: 1}}, Total: 40},
			TotalEarnings: amount(250),
			StaffList:     []model.Admin{{ID: 2}},
		}, nil)

		got, err := NewCommissionService(api).List(ctx, "super_admin", false, filter)
		require.NoError(t, err)
		assert.Equal(t, 40, got.Total)
		assert.Equal(t, model.Amount(250), got.TotalEarnings)
		assert.Len(t, got.StaffList, 1)
	})

	t.Run("manager sees team", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("ManagerCommissions", ctx, filter).Return(&backend.CommissionResponse{
			Commissions: model.Page[model.Commission]{Data: []model.Commission{{ID: 1}, {ID: 2}}},
			TotalEarned: amount(12.5),
		}, nil)

		got, err := NewCommissionService(api).List(ctx, "manager", false, filter)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Total, "total falls back to item count")
		assert.Equal(t, model.Amount(12.5), got.TotalEarnings)
	})

	t.Run("staff sees own", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("MyCommissions", ctx).Return(&backend.CommissionResponse{}, nil)

		got, err := NewCommissionService(api).List(ctx, "staff", false, filter)
		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Zero(t, got.TotalEarnings)
		api.AssertExpectations(t)
	})
}

func TestCommissionService_AddManual(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	in := model.ManualCommission{StaffID: 2, AmountEarned: 100}
	api.On("AddManualCommission", ctx, in).Return(nil)

	svc := NewCommissionService(api)
	assert.ErrorIs(t, svc.AddManual(ctx, model.ManualCommission{AmountEarned: 5}), ErrValidation)
	assert.ErrorIs(t, svc.AddManual(ctx, model.ManualCommission{StaffID: 2}), ErrValidation)
	assert.NoError(t, svc.AddManual(ctx, in))
}
