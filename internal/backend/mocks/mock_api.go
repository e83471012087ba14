package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

// MockAPI is a testify mock of backend.API.
type MockAPI struct {
	mock.Mock
}

var _ backend.API = (*MockAPI)(nil)

func (m *MockAPI) Login(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) Profile(ctx context.Context) (*model.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAPI) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockAPI) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Admin), args.Error(1)
}

func (m *MockAPI) GetAdmin(ctx context.Context, id int64) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAPI) CreateAdmin(ctx context.Context, in model.AdminInput) (*model.Admin, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAPI) UpdateAdmin(ctx context.Context, id int64, in model.AdminInput) (*model.Admin, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAPI) DeleteAdmin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ListEmployees(ctx context.Context, q model.ListQuery) (*model.Page[model.Employee], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Employee]), args.Error(1)
}

func (m *MockAPI) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockAPI) CreateEmployee(ctx context.Context, in model.NewEmployee) (*model.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockAPI) UpdateEmployee(ctx context.Context, id int64, in model.EmployeeUpdate) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockAPI) DeleteEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) UpgradeEmployeePlan(ctx context.Context, id int64, in model.PlanUpgrade) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockAPI) ListEmployers(ctx context.Context, q model.ListQuery) (*model.Page[model.Employer], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Employer]), args.Error(1)
}

func (m *MockAPI) GetEmployer(ctx context.Context, id int64) (*model.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employer), args.Error(1)
}

func (m *MockAPI) CreateEmployer(ctx context.Context, in model.NewEmployer) (*model.Employer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employer), args.Error(1)
}

func (m *MockAPI) UpdateEmployer(ctx context.Context, id int64, in model.EmployerUpdate) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockAPI) DeleteEmployer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) UpgradeEmployerPlan(ctx context.Context, id int64, in model.PlanUpgrade) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockAPI) AddJobForEmployer(ctx context.Context, employerID int64, in model.NewJob) (*model.Job, error) {
	args := m.Called(ctx, employerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockAPI) ListJobs(ctx context.Context, q model.ListQuery) (*model.Page[model.Job], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Job]), args.Error(1)
}

func (m *MockAPI) ProfilePhotos(ctx context.Context, status string) (*model.PhotoList, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PhotoList), args.Error(1)
}

func (m *MockAPI) PendingProfilePhotos(ctx context.Context) (*model.PhotoList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PhotoList), args.Error(1)
}

func (m *MockAPI) UpdateProfilePhotoStatus(ctx context.Context, employeeID int64, status, reason string) error {
	args := m.Called(ctx, employeeID, status, reason)
	return args.Error(0)
}

func (m *MockAPI) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockAPI) PendingCoupons(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockAPI) GetCoupon(ctx context.Context, id int64) (*model.CouponDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CouponDetails), args.Error(1)
}

func (m *MockAPI) CreateCoupon(ctx context.Context, in model.NewCoupon) (*model.Coupon, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockAPI) UpdateCoupon(ctx context.Context, id int64, in model.NewCoupon) (*model.Coupon, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockAPI) DeleteCoupon(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ReviewCoupon(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAPI) AssignCouponUsers(ctx context.Context, id int64, users []model.AssignUser) (*model.AssignResult, error) {
	args := m.Called(ctx, id, users)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssignResult), args.Error(1)
}

func (m *MockAPI) RemoveCouponUser(ctx context.Context, couponID, assignmentID int64) error {
	args := m.Called(ctx, couponID, assignmentID)
	return args.Error(0)
}

func (m *MockAPI) AllCommissions(ctx context.Context, f model.CommissionFilter) (*backend.CommissionResponse, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CommissionResponse), args.Error(1)
}

func (m *MockAPI) ManagerCommissions(ctx context.Context, f model.CommissionFilter) (*backend.CommissionResponse, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CommissionResponse), args.Error(1)
}

func (m *MockAPI) MyCommissions(ctx context.Context) (*backend.CommissionResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CommissionResponse), args.Error(1)
}

func (m *MockAPI) AddManualCommission(ctx context.Context, in model.ManualCommission) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockAPI) ListCVRequests(ctx context.Context, status string) ([]model.CVRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CVRequest), args.Error(1)
}

func (m *MockAPI) UpdateCVRequestStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAPI) ListPlans(ctx context.Context) ([]model.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plan), args.Error(1)
}

func (m *MockAPI) CreatePlan(ctx context.Context, in model.PlanInput) (*model.Plan, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockAPI) UpdatePlan(ctx context.Context, id int64, in model.PlanInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockAPI) DeletePlan(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) AddPlanFeature(ctx context.Context, planID int64, in model.FeatureInput) error {
	args := m.Called(ctx, planID, in)
	return args.Error(0)
}

func (m *MockAPI) DeletePlanFeature(ctx context.Context, featureID int64) error {
	args := m.Called(ctx, featureID)
	return args.Error(0)
}

func (m *MockAPI) ListCatalog(ctx context.Context, kind model.CatalogKind) ([]model.CatalogItem, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockAPI) CreateCatalogItem(ctx context.Context, kind model.CatalogKind, in model.CatalogInput) error {
	args := m.Called(ctx, kind, in)
	return args.Error(0)
}

func (m *MockAPI) UpdateCatalogItem(ctx context.Context, kind model.CatalogKind, id int64, in model.CatalogInput) error {
	args := m.Called(ctx, kind, id, in)
	return args.Error(0)
}

func (m *MockAPI) DeleteCatalogItem(ctx context.Context, kind model.CatalogKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockAPI) ListPlanOrders(ctx context.Context, q model.ListQuery) (*model.Page[model.PlanOrder], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.PlanOrder]), args.Error(1)
}

func (m *MockAPI) GetPlanOrder(ctx context.Context, id int64) (*model.PlanOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlanOrder), args.Error(1)
}

func (m *MockAPI) ListPaymentTransactions(ctx context.Context, q model.ListQuery) (*model.Page[model.PaymentTransaction], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.PaymentTransaction]), args.Error(1)
}

func (m *MockAPI) GetPaymentTransaction(ctx context.Context, id int64) (*model.PaymentTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentTransaction), args.Error(1)
}

func (m *MockAPI) PaymentStats(ctx context.Context) (*model.PaymentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentStats), args.Error(1)
}
