package backend

import (
	"context"
	"net/http"

	"jobadmin/internal/model"
)

func (c *Client) ListEmployees(ctx context.Context, q model.ListQuery) (*model.Page[model.Employee], error) {
	var out struct {
		Employees model.Page[model.Employee] `json:"employees"`
	}
	r := request{name: "employees.list", method: http.MethodGet, path: "/admin/employees", query: listValues(q)}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out.Employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	var out struct {
		Employee model.Employee `json:"employee"`
	}
	if err := c.do(ctx, request{name: "employees.get", method: http.MethodGet, path: pathf("/admin/employees/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out.Employee, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in model.NewEmployee) (*model.Employee, error) {
	var out struct {
		Employee model.Employee `json:"employee"`
	}
	if err := c.do(ctx, request{name: "employees.create", method: http.MethodPost, path: "/admin/employees", body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, in model.EmployeeUpdate) error {
	return c.do(ctx, request{name: "employees.update", method: http.MethodPut, path: pathf("/admin/employees/%s", id), body: in}, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.do(ctx, request{name: "employees.delete", method: http.MethodDelete, path: pathf("/admin/employees/%s", id)}, nil)
}

func (c *Client) UpgradeEmployeePlan(ctx context.Context, id int64, in model.PlanUpgrade) error {
	return c.do(ctx, request{name: "employees.upgrade_plan", method: http.MethodPost, path: pathf("/admin/employees/%s/upgrade-plan", id), body: in}, nil)
}

func (c *Client) ListEmployers(ctx context.Context, q model.ListQuery) (*model.Page[model.Employer], error) {
	var out struct {
		Employers model.Page[model.Employer] `json:"employers"`
	}
	r := request{name: "employers.list", method: http.MethodGet, path: "/admin/employers", query: listValues(q)}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out.Employers, nil
}

func (c *Client) GetEmployer(ctx context.Context, id int64) (*model.Employer, error) {
	var out struct {
		Employer model.Employer `json:"employer"`
	}
	if err := c.do(ctx, request{name: "employers.get", method: http.MethodGet, path: pathf("/admin/employers/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out.Employer, nil
}

func (c *Client) CreateEmployer(ctx context.Context, in model.NewEmployer) (*model.Employer, error) {
	var out struct {
		Employer model.Employer `json:"employer"`
	}
	if err := c.do(ctx, request{name: "employers.create", method: http.MethodPost, path: "/admin/employers", body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Employer, nil
}

func (c *Client) UpdateEmployer(ctx context.Context, id int64, in model.EmployerUpdate) error {
	return c.do(ctx, request{name: "employers.update", method: http.MethodPut, path: pathf("/admin/employers/%s", id), body: in}, nil)
}

func (c *Client) DeleteEmployer(ctx context.Context, id int64) error {
	return c.do(ctx, request{name: "employers.delete", method: http.MethodDelete, path: pathf("/admin/employers/%s", id)}, nil)
}

func (c *Client) UpgradeEmployerPlan(ctx context.Context, id int64, in model.PlanUpgrade) error {
	return c.do(ctx, request{name: "employers.upgrade_plan", method: http.MethodPost, path: pathf("/admin/employers/%s/upgrade-plan", id), body: in}, nil)
}

// AddJobForEmployer posts a job on behalf of the employer; plan quotas are enforced server side.
func (c *Client) AddJobForEmployer(ctx context.Context, employerID int64, in model.NewJob) (*model.Job, error) {
	var out struct {
		Job model.Job `json:"job"`
	}
	if err := c.do(ctx, request{name: "employers.add_job", method: http.MethodPost, path: pathf("/admin/employers/%s/jobs", employerID), body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

func (c *Client) ListJobs(ctx context.Context, q model.ListQuery) (*model.Page[model.Job], error) {
	var out struct {
		Jobs model.Page[model.Job] `json:"jobs"`
	}
	if err := c.do(ctx, request{name: "jobs.list", method: http.MethodGet, path: "/admin/jobs", query: listValues(q)}, &out); err != nil {
		return nil, err
	}
	return &out.Jobs, nil
}

// ProfilePhotos lists employees by photo review status; "all" returns every status.
func (c *Client) ProfilePhotos(ctx context.Context, status string) (*model.PhotoList, error) {
	var out model.PhotoList
	r := request{name: "photos.list", method: http.MethodGet, path: "/admin/profile-photos", query: listValues(model.ListQuery{Status: status})}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PendingProfilePhotos(ctx context.Context) (*model.PhotoList, error) {
	var out model.PhotoList
	if err := c.do(ctx, request{name: "photos.pending", method: http.MethodGet, path: "/admin/profile-photos/pending"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfilePhotoStatus(ctx context.Context, employeeID int64, status, reason string) error {
	body := struct {
		Status          string `json:"status"`
		RejectionReason string `json:"rejection_reason,omitempty"`
	}{status, reason}
	return c.do(ctx, request{name: "photos.status", method: http.MethodPut, path: pathf("/admin/profile-photos/%s/status", employeeID), body: body}, nil)
}
