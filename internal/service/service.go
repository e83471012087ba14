// Package service holds the console workflows: form rules, role checks and the shaping of
// backend responses for each screen.
package service

import (
	"jobadmin/internal/backend"
	"jobadmin/internal/session"
)

// Services bundles every workflow over one backend client.
type Services struct {
	Auth          AuthService
	Admins        AdminService
	Employees     EmployeeService
	Employers     EmployerService
	Jobs          JobService
	Coupons       CouponService
	Commissions   CommissionService
	CVRequests    CVRequestService
	ProfilePhotos ProfilePhotoService
	Plans         PlanService
	Catalogs      CatalogService
	Payments      PaymentService
	Dashboard     DashboardService
}

func New(api backend.API, store session.Store, apiBaseURL string) *Services {
	return &Services{
		Auth:          NewAuthService(api, store),
		Admins:        NewAdminService(api),
		Employees:     NewEmployeeService(api),
		Employers:     NewEmployerService(api),
		Jobs:          NewJobService(api),
		Coupons:       NewCouponService(api),
		Commissions:   NewCommissionService(api),
		CVRequests:    NewCVRequestService(api),
		ProfilePhotos: NewProfilePhotoService(api, apiBaseURL),
		Plans:         NewPlanService(api),
		Catalogs:      NewCatalogService(api),
		Payments:      NewPaymentService(api),
		Dashboard:     NewDashboardService(api),
	}
}
