package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/backend"
	apiMocks "jobadmin/internal/backend/mocks"
	"jobadmin/internal/model"
)

func TestAdminService_UpdateDropsBlankPassword(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("UpdateAdmin", ctx, int64(4), model.AdminInput{Name: "Sam", Email: "sam@x.io", Role: "manager"}).
		Return(&model.Admin{ID: 4}, nil)

	_, err := NewAdminService(api).Update(ctx, 4, model.AdminInput{Name: "Sam", Email: "sam@x.io", Password: "  ", Role: "manager"})
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestAdminService_CreateValidation(t *testing.T) {
	svc := NewAdminService(new(apiMocks.MockAPI))

	_, err := svc.Create(context.Background(), model.AdminInput{Name: "Sam", Email: "sam@x.io", Role: "staff"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), model.AdminInput{Name: "Sam", Email: "sam@x.io", Password: "secret1", Role: "owner"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminService_Diagnose(t *testing.T) {
	ctx := context.Background()
	fixed := time.UnixMilli(1700000000000)

	t.Run("creates and removes the throwaway admin", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("Profile", ctx).Return(&model.Admin{ID: 1, Role: "super_admin"}, nil)
		api.On("CreateAdmin", ctx, mock.MatchedBy(func(in model.AdminInput) bool {
			return in.Email == "test_1700000000000@test.com" && in.Role == "staff" && in.Password == "password123"
		})).Return(&model.Admin{ID: 99}, nil)
		api.On("DeleteAdmin", ctx, int64(99)).Return(nil)

		svc := &adminService{api: api, now: func() time.Time { return fixed }}
		report := svc.Diagnose(ctx)

		assert.True(t, report.CanCreateAdmins)
		assert.True(t, report.Success)
		assert.True(t, report.CleanedUp)
		assert.Equal(t, "Admin created successfully!", report.Message)
		api.AssertExpectations(t)
	})

	t.Run("reports backend rejection", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("Profile", ctx).Return(&model.Admin{ID: 2, Role: "manager"}, nil)
		api.On("CreateAdmin", ctx, mock.Anything).Return(nil, &backend.APIError{
			Status:  403,
			Message: "Only super admins can create admins",
			Errors:  map[string][]string{"role": {"forbidden"}},
		})

		svc := &adminService{api: api, now: func() time.Time { return fixed }}
		report := svc.Diagnose(ctx)

		assert.False(t, report.CanCreateAdmins)
		assert.False(t, report.Success)
		assert.Equal(t, 403, report.Status)
		assert.Equal(t, "Only super admins can create admins", report.Message)
		assert.Contains(t, report.Errors, "role")
		api.AssertNotCalled(t, "DeleteAdmin", mock.Anything, mock.Anything)
	})
}
