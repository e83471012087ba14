package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/model"
	"jobadmin/internal/service"
)

type planUpgradeRequest struct {
	PlanID int64 `json:"plan_id"`
}

type validateStepRequest struct {
	Step  int                   `json:"step"`
	Draft service.EmployeeDraft `json:"draft"`
}

func ListEmployees(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.List(c.UserContext(), listQuery(c))
		if err != nil {
			return respondError(c, err, "Failed to fetch employees")
		}
		return c.JSON(page)
	}
}

func GetEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch employee details")
		}
		return c.JSON(e)
	}
}

// EmployeeCatalogs returns the option lists of the creation wizard.
func EmployeeCatalogs(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := svc.Catalogs(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load form options")
		}
		return c.JSON(cats)
	}
}

// ValidateEmployeeStep checks one wizard step before the admin moves on.
func ValidateEmployeeStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req validateStepRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		if err := req.Draft.ValidateStep(req.Step); err != nil {
			return respondError(c, err, "Invalid step")
		}
		return c.JSON(fiber.Map{"valid": true, "step": req.Step})
	}
}

func CreateEmployee(svc service.EmployeeService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var draft service.EmployeeDraft
		if err := c.BodyParser(&draft); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "create", resource: "employee", success: "Employee created successfully", failure: "Failed to create employee", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return svc.Create(c.UserContext(), &draft)
		})
	}
}

func UpdateEmployee(svc service.EmployeeService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.EmployeeUpdate
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "update", resource: "employee", id: idString(id), success: "Employee updated successfully", failure: "Failed to update employee"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Update(c.UserContext(), id, in)
		})
	}
}

func DeleteEmployee(svc service.EmployeeService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete", resource: "employee", id: idString(id), success: "Employee deleted successfully", failure: "Failed to delete employee"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), id)
		})
	}
}

func UpgradeEmployeePlan(svc service.EmployeeService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var req planUpgradeRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "upgrade_plan", resource: "employee", id: idString(id), success: "Plan upgraded successfully", failure: "Failed to upgrade plan"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.UpgradePlan(c.UserContext(), id, req.PlanID)
		})
	}
}

type employerRow struct {
	model.Employer
	PlanStatus service.PlanState `json:"plan_status"`
}

type employerDetail struct {
	model.Employer
	PlanStatus service.PlanState `json:"plan_status"`
	Quota      service.Quota     `json:"quota"`
}

type employerPage struct {
	Data        []employerRow `json:"data"`
	Total       int           `json:"total"`
	PerPage     int           `json:"per_page,omitempty"`
	CurrentPage int           `json:"current_page,omitempty"`
	LastPage    int           `json:"last_page,omitempty"`
}

// ListEmployers adds the plan chip of each row.
func ListEmployers(svc service.EmployerService, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.List(c.UserContext(), listQuery(c))
		if err != nil {
			return respondError(c, err, "Failed to fetch employers")
		}
		t := now()
		out := employerPage{
			Data:        make([]employerRow, 0, len(page.Data)),
			Total:       page.Total,
			PerPage:     page.PerPage,
			CurrentPage: page.CurrentPage,
			LastPage:    page.LastPage,
		}
		for _, e := range page.Data {
			out.Data = append(out.Data, employerRow{Employer: e, PlanStatus: service.PlanStatus(e, t)})
		}
		return c.JSON(out)
	}
}

func GetEmployer(svc service.EmployerService, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch employer details")
		}
		return c.JSON(employerDetail{
			Employer:   *e,
			PlanStatus: service.PlanStatus(*e, now()),
			Quota:      service.PostingQuota(e),
		})
	}
}

func EmployerIndustries(svc service.EmployerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Industries(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load industries")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

func EmployerUpgradePlans(svc service.EmployerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plans, err := svc.UpgradeCandidates(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load plans")
		}
		return c.JSON(fiber.Map{"data": plans})
	}
}

func CreateEmployer(svc service.EmployerService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f service.EmployerForm
		if err := c.BodyParser(&f); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "create", resource: "employer", success: "Employer added successfully", failure: "Failed to add employer", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return svc.Create(c.UserContext(), f)
		})
	}
}

func UpdateEmployer(svc service.EmployerService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.EmployerUpdate
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "update", resource: "employer", id: idString(id), success: "Employer updated successfully", failure: "Failed to update employer"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Update(c.UserContext(), id, in)
		})
	}
}

func DeleteEmployer(svc service.EmployerService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete", resource: "employer", id: idString(id), success: "Employer deleted successfully", failure: "Failed to delete employer"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), id)
		})
	}
}

func UpgradeEmployerPlan(svc service.EmployerService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var req planUpgradeRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "upgrade_plan", resource: "employer", id: idString(id), success: "Plan upgraded successfully", failure: "Failed to upgrade plan"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.UpgradePlan(c.UserContext(), id, req.PlanID)
		})
	}
}

// EmployerQuota reports whether the employer may post another job.
func EmployerQuota(svc service.EmployerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch employer details")
		}
		return c.JSON(service.PostingQuota(e))
	}
}

// AddEmployerJob posts a job for an employer; the quota is checked against fresh employer data.
func AddEmployerJob(employers service.EmployerService, jobs service.JobService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var f service.JobForm
		if err := c.BodyParser(&f); err != nil {
			return invalidBody(c)
		}
		e, err := employers.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch employer details")
		}
		m := mutation{action: "create", resource: "job", id: idString(id), success: "Job added successfully", failure: "Failed to add job", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return jobs.CreateForEmployer(c.UserContext(), e, f)
		})
	}
}

func ListJobs(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.List(c.UserContext(), listQuery(c))
		if err != nil {
			return respondError(c, err, "Failed to fetch jobs")
		}
		return c.JSON(page)
	}
}

func JobCatalogs(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := svc.Catalogs(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load form options")
		}
		return c.JSON(cats)
	}
}

type photoRow struct {
	model.Employee
	PhotoURL string `json:"photo_url"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// ListProfilePhotos lists photos by review status (pending by default, "all" for every status).
func ListProfilePhotos(svc service.ProfilePhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext(), c.Query("status"))
		if err != nil {
			return respondError(c, err, "Failed to fetch profile photos")
		}
		rows := make([]photoRow, 0, len(list.Employees))
		for _, e := range list.Employees {
			rows = append(rows, photoRow{Employee: e, PhotoURL: svc.PhotoURL(e)})
		}
		return c.JSON(fiber.Map{"employees": rows, "count": list.Count})
	}
}

func ApproveProfilePhoto(svc service.ProfilePhotoService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "approve", resource: "profile_photo", id: idString(id), success: "Profile photo approved successfully", failure: "Failed to approve photo"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Approve(c.UserContext(), id)
		})
	}
}

func RejectProfilePhoto(svc service.ProfilePhotoService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var req rejectRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "reject", resource: "profile_photo", id: idString(id), success: "Profile photo rejected", failure: "Failed to reject photo"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Reject(c.UserContext(), id, req.Reason)
		})
	}
}
