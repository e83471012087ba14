package backend

import (
	"context"

	"jobadmin/internal/model"
)

// API is the backend surface the console services depend on. *Client implements it.
type API interface {
	Login(ctx context.Context, identifier, password string) (*model.LoginResult, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*model.Admin, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)

	ListAdmins(ctx context.Context) ([]model.Admin, error)
	GetAdmin(ctx context.Context, id int64) (*model.Admin, error)
	CreateAdmin(ctx context.Context, in model.AdminInput) (*model.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, in model.AdminInput) (*model.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error

	ListEmployees(ctx context.Context, q model.ListQuery) (*model.Page[model.Employee], error)
	GetEmployee(ctx context.Context, id int64) (*model.Employee, error)
	CreateEmployee(ctx context.Context, in model.NewEmployee) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, in model.EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, id int64) error
	UpgradeEmployeePlan(ctx context.Context, id int64, in model.PlanUpgrade) error

	ListEmployers(ctx context.Context, q model.ListQuery) (*model.Page[model.Employer], error)
	GetEmployer(ctx context.Context, id int64) (*model.Employer, error)
	CreateEmployer(ctx context.Context, in model.NewEmployer) (*model.Employer, error)
	UpdateEmployer(ctx context.Context, id int64, in model.EmployerUpdate) error
	DeleteEmployer(ctx context.Context, id int64) error
	UpgradeEmployerPlan(ctx context.Context, id int64, in model.PlanUpgrade) error
	AddJobForEmployer(ctx context.Context, employerID int64, in model.NewJob) (*model.Job, error)

	ListJobs(ctx context.Context, q model.ListQuery) (*model.Page[model.Job], error)

	ProfilePhotos(ctx context.Context, status string) (*model.PhotoList, error)
	PendingProfilePhotos(ctx context.Context) (*model.PhotoList, error)
	UpdateProfilePhotoStatus(ctx context.Context, employeeID int64, status, reason string) error

	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	PendingCoupons(ctx context.Context) ([]model.Coupon, error)
	GetCoupon(ctx context.Context, id int64) (*model.CouponDetails, error)
	CreateCoupon(ctx context.Context, in model.NewCoupon) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, id int64, in model.NewCoupon) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id int64) error
	ReviewCoupon(ctx context.Context, id int64, status string) error
	AssignCouponUsers(ctx context.Context, id int64, users []model.AssignUser) (*model.AssignResult, error)
	RemoveCouponUser(ctx context.Context, couponID, assignmentID int64) error

	AllCommissions(ctx context.Context, f model.CommissionFilter) (*CommissionResponse, error)
	ManagerCommissions(ctx context.Context, f model.CommissionFilter) (*CommissionResponse, error)
	MyCommissions(ctx context.Context) (*CommissionResponse, error)
	AddManualCommission(ctx context.Context, in model.ManualCommission) error

	ListCVRequests(ctx context.Context, status string) ([]model.CVRequest, error)
	UpdateCVRequestStatus(ctx context.Context, id int64, status string) error

	ListPlans(ctx context.Context) ([]model.Plan, error)
	CreatePlan(ctx context.Context, in model.PlanInput) (*model.Plan, error)
	UpdatePlan(ctx context.Context, id int64, in model.PlanInput) error
	DeletePlan(ctx context.Context, id int64) error
	AddPlanFeature(ctx context.Context, planID int64, in model.FeatureInput) error
	DeletePlanFeature(ctx context.Context, featureID int64) error

	ListCatalog(ctx context.Context, kind model.CatalogKind) ([]model.CatalogItem, error)
	CreateCatalogItem(ctx context.Context, kind model.CatalogKind, in model.CatalogInput) error
	UpdateCatalogItem(ctx context.Context, kind model.CatalogKind, id int64, in model.CatalogInput) error
	DeleteCatalogItem(ctx context.Context, kind model.CatalogKind, id int64) error

	ListPlanOrders(ctx context.Context, q model.ListQuery) (*model.Page[model.PlanOrder], error)
	GetPlanOrder(ctx context.Context, id int64) (*model.PlanOrder, error)
	ListPaymentTransactions(ctx context.Context, q model.ListQuery) (*model.Page[model.PaymentTransaction], error)
	GetPaymentTransaction(ctx context.Context, id int64) (*model.PaymentTransaction, error)
	PaymentStats(ctx context.Context) (*model.PaymentStats, error)
}

var _ API = (*Client)(nil)
