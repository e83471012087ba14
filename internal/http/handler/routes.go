package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/export"
	"jobadmin/internal/http/middleware"
	"jobadmin/internal/model"
	"jobadmin/internal/rbac"
	"jobadmin/internal/service"
	"jobadmin/internal/session"
	"jobadmin/internal/token"
)

// Deps is what the routes need. DB and Exports may be nil when their backing store is not configured.
type Deps struct {
	DB       *sql.DB
	Services *service.Services
	Store    session.Store
	Tokens   *token.JWT
	Audit    audit.Recorder
	Exports  export.Service
	Now      func() time.Time
}

// RegisterRoutes attaches the console routes to app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Audit == nil {
		d.Audit = audit.Nop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	svc, rec := d.Services, d.Audit

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/swagger/*", Swagger())

	auth := app.Group("/auth", middleware.NoStore())
	auth.Post("/login", Login(svc.Auth, d.Tokens, rec))

	authed := Authenticate(d.Tokens, d.Store)
	auth.Post("/logout", authed, Logout(svc.Auth, rec))
	app.Get("/me", middleware.NoStore(), authed, Me())
	app.Get("/menu", middleware.NoStore(), authed, Menu())

	api := app.Group("/api", middleware.NoStore(), authed, RouteGuard("/api"))

	api.Get("/dashboard", Dashboard(svc.Dashboard))

	admins := api.Group("/admins")
	admins.Get("/", ListAdmins(svc.Admins))
	admins.Post("/", CreateAdmin(svc.Admins, rec))
	admins.Post("/diagnose", DiagnoseAdmins(svc.Admins, rec))
	admins.Get("/:id", GetAdmin(svc.Admins))
	admins.Put("/:id", UpdateAdmin(svc.Admins, rec))
	admins.Delete("/:id", DeleteAdmin(svc.Admins, rec))

	employees := api.Group("/employees")
	employees.Get("/", ListEmployees(svc.Employees))
	employees.Post("/", CreateEmployee(svc.Employees, rec))
	employees.Get("/catalogs", EmployeeCatalogs(svc.Employees))
	employees.Post("/validate-step", ValidateEmployeeStep())
	employees.Get("/:id", GetEmployee(svc.Employees))
	employees.Put("/:id", UpdateEmployee(svc.Employees, rec))
	employees.Delete("/:id", DeleteEmployee(svc.Employees, rec))
	employees.Post("/:id/upgrade-plan", UpgradeEmployeePlan(svc.Employees, rec))

	employers := api.Group("/employers")
	employers.Get("/", ListEmployers(svc.Employers, d.Now))
	employers.Post("/", CreateEmployer(svc.Employers, rec))
	employers.Get("/industries", EmployerIndustries(svc.Employers))
	employers.Get("/plans", EmployerUpgradePlans(svc.Employers))
	employers.Get("/:id", GetEmployer(svc.Employers, d.Now))
	employers.Put("/:id", UpdateEmployer(svc.Employers, rec))
	employers.Delete("/:id", DeleteEmployer(svc.Employers, rec))
	employers.Post("/:id/upgrade-plan", UpgradeEmployerPlan(svc.Employers, rec))
	employers.Get("/:id/quota", EmployerQuota(svc.Employers))
	employers.Post("/:id/jobs", AddEmployerJob(svc.Employers, svc.Jobs, rec))

	jobs := api.Group("/jobs")
	jobs.Get("/", ListJobs(svc.Jobs))
	jobs.Get("/catalogs", JobCatalogs(svc.Jobs))

	coupons := api.Group("/coupons")
	coupons.Get("/", ListCoupons(svc.Coupons))
	coupons.Post("/", CreateCoupon(svc.Coupons, rec))
	coupons.Get("/pending", PendingCoupons(svc.Coupons))
	coupons.Get("/:id", GetCoupon(svc.Coupons))
	coupons.Delete("/:id", DeleteCoupon(svc.Coupons, rec))
	coupons.Post("/:id/approve", ReviewCoupon(svc.Coupons, rec, model.CouponApproved))
	coupons.Post("/:id/reject", ReviewCoupon(svc.Coupons, rec, model.CouponRejected))
	coupons.Post("/:id/assign", AssignCoupon(svc.Coupons, rec))
	coupons.Delete("/:id/assign/:assignmentID", UnassignCoupon(svc.Coupons, rec))

	commissions := api.Group("/commissions")
	commissions.Get("/", ListCommissions(svc.Commissions))
	commissions.Post("/manual", RequireRoles(rbac.SuperAdmin), AddManualCommission(svc.Commissions, rec))

	cv := api.Group("/cv-requests")
	cv.Get("/", ListCVRequests(svc.CVRequests))
	cv.Put("/:id/status", UpdateCVRequestStatus(svc.CVRequests, rec))

	photos := api.Group("/profile-photos")
	photos.Get("/", ListProfilePhotos(svc.ProfilePhotos))
	photos.Post("/:id/approve", ApproveProfilePhoto(svc.ProfilePhotos, rec))
	photos.Post("/:id/reject", RejectProfilePhoto(svc.ProfilePhotos, rec))

	plans := api.Group("/plans")
	plans.Get("/", ListPlans(svc.Plans))
	plans.Post("/", CreatePlan(svc.Plans, rec))
	plans.Put("/:id", UpdatePlan(svc.Plans, rec))
	plans.Delete("/:id", DeletePlan(svc.Plans, rec))
	plans.Post("/:id/features", AddPlanFeature(svc.Plans, rec))
	plans.Delete("/features/:featureID", DeletePlanFeature(svc.Plans, rec))

	catalogs := api.Group("/catalogs")
	catalogs.Get("/:kind", ListCatalog(svc.Catalogs))
	catalogs.Post("/:kind", CreateCatalogItem(svc.Catalogs, rec))
	catalogs.Put("/:kind/:id", UpdateCatalogItem(svc.Catalogs, rec))
	catalogs.Delete("/:kind/:id", DeleteCatalogItem(svc.Catalogs, rec))

	orders := api.Group("/orders", RequireRoles(paymentRoles...))
	orders.Get("/", ListOrders(svc.Payments))
	orders.Get("/:id", GetOrder(svc.Payments))

	tx := api.Group("/transactions", RequireRoles(paymentRoles...))
	tx.Get("/", ListTransactions(svc.Payments))
	tx.Get("/:id", GetTransaction(svc.Payments))

	api.Get("/payment-stats", RequireRoles(paymentRoles...), PaymentStats(svc.Payments))

	api.Get("/audit", RequireRoles(rbac.SuperAdmin), ListAudit(rec))

	exports := api.Group("/exports")
	if d.Exports == nil {
		exports.Use(ExportsUnavailable())
		return
	}
	exports.Post("/", CreateExport(d.Exports, rec))
	exports.Get("/", ListExports(d.Exports))
	exports.Get("/:id", GetExport(d.Exports))
	exports.Get("/:id/download", DownloadExport(d.Exports))
	exports.Delete("/:id", DeleteExport(d.Exports, rec))
}
