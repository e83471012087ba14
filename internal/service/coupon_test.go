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

func couponDetails(status, couponFor string) *model.CouponDetails {
	return &model.CouponDetails{
		Coupon:        model.Coupon{ID: 7, Code: "WELCOME", Status: status, CouponFor: couponFor},
		AssignedUsers: []model.CouponAssignment{},
	}
}

func TestCouponForm(t *testing.T) {
	assert.ErrorIs(t, CouponForm{DiscountPercentage: 10}.Validate(), ErrValidation)
	assert.ErrorIs(t, CouponForm{Code: "X", DiscountPercentage: 101}.Validate(), ErrValidation)
	assert.ErrorIs(t, CouponForm{Code: "X", DiscountPercentage: -1}.Validate(), ErrValidation)
	assert.NoError(t, CouponForm{Code: "X", DiscountPercentage: 100}.Validate())

	expiry := time.Date(2025, 12, 31, 23, 30, 0, 0, time.UTC)
	p := CouponForm{Code: " SAVE10 ", DiscountPercentage: 10, ExpiryDate: &expiry}.Payload(42)
	assert.Equal(t, "SAVE10", p.Code)
	assert.Equal(t, int64(42), p.StaffID)
	require.NotNil(t, p.ExpiryDate)
	assert.Equal(t, "2025-12-31", *p.ExpiryDate)

	assert.Nil(t, CouponForm{Code: "X"}.Payload(1).ExpiryDate)
}

func TestCouponService_Review(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		role       string
		status     string
		setupMocks func(m *apiMocks.MockAPI)
		wantErr    error
	}{
		{name: "manager cannot review", role: "manager", status: "approved", wantErr: ErrForbidden},
		{name: "bad status", role: "super_admin", status: "pending", wantErr: ErrValidation},
		{
			name:   "already reviewed",
			role:   "super_admin",
			status: "approved",
			setupMocks: func(m *apiMocks.MockAPI) {
				m.On("GetCoupon", ctx, int64(7)).Return(couponDetails("rejected", "employee"), nil)
			},
			wantErr: ErrNotPending,
		},
		{
			name:   "approve pending",
			role:   "super_admin",
			status: "approved",
			setupMocks: func(m *apiMocks.MockAPI) {
				m.On("GetCoupon", ctx, int64(7)).Return(couponDetails("pending", "employee"), nil)
				m.On("ReviewCoupon", ctx, int64(7), "approved").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(apiMocks.MockAPI)
			if tt.setupMocks != nil {
				tt.setupMocks(api)
			}
			err := NewCouponService(api).Review(ctx, tt.role, 7, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				api.AssertNotCalled(t, "ReviewCoupon", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestCouponService_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("not approved", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("GetCoupon", ctx, int64(7)).Return(couponDetails("pending", "employee"), nil)

		_, err := NewCouponService(api).Assign(ctx, 7, []string{"a@x.io"})
		assert.ErrorIs(t, err, ErrNotApproved)
	})

	t.Run("only blanks", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("GetCoupon", ctx, int64(7)).Return(couponDetails("approved", "employer"), nil)

		_, err := NewCouponService(api).Assign(ctx, 7, []string{"", "   "})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rows typed with coupon_for", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("GetCoupon", ctx, int64(7)).Return(couponDetails("approved", "employer"), nil)
		api.On("AssignCouponUsers", ctx, int64(7), []model.AssignUser{
			{Identifier: "hr@acme.io", Type: "employer"},
			{Identifier: "9999999999", Type: "employer"},
		}).Return(&model.AssignResult{
			Assigned: []model.CouponAssignment{{ID: 1}},
			Failed:   []model.AssignFailure{{Identifier: "9999999999", Reason: "User not found"}},
		}, nil)

		res, err := NewCouponService(api).Assign(ctx, 7, []string{" hr@acme.io", "", "9999999999"})
		require.NoError(t, err)
		assert.Len(t, res.Assigned, 1)
		assert.Equal(t, "User not found", res.Failed[0].Reason)
		api.AssertExpectations(t)
	})
}

func TestCouponService_Create(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("CreateCoupon", ctx, mock.MatchedBy(func(in model.NewCoupon) bool {
		return in.StaffID == 3 && in.Code == "SAVE5" && in.ExpiryDate == nil
	})).Return(&model.Coupon{ID: 1}, nil)

	_, err := NewCouponService(api).Create(ctx, model.Admin{ID: 3}, CouponForm{Code: "SAVE5", DiscountPercentage: 5})
	require.NoError(t, err)
	api.AssertExpectations(t)
}
