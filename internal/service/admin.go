package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
	"jobadmin/internal/rbac"
)

// DiagnosticReport is the outcome of a test admin creation.
type DiagnosticReport struct {
	Profile         *model.Admin        `json:"profile,omitempty"`
	ProfileError    string              `json:"profile_error,omitempty"`
	CanCreateAdmins bool                `json:"can_create_admins"`
	Success         bool                `json:"success"`
	Message         string              `json:"message"`
	Status          int                 `json:"status,omitempty"`
	Errors          map[string][]string `json:"errors,omitempty"`
	CleanedUp       bool                `json:"cleaned_up"`
}

type AdminService interface {
	List(ctx context.Context) ([]model.Admin, error)
	Get(ctx context.Context, id int64) (*model.Admin, error)
	Create(ctx context.Context, in model.AdminInput) (*model.Admin, error)
	// Update keeps the stored password when in.Password is blank.
	Update(ctx context.Context, id int64, in model.AdminInput) (*model.Admin, error)
	Delete(ctx context.Context, id int64) error
	// Diagnose checks whether the signed-in admin can create admins by creating a throwaway
	// staff account and deleting it again.
	Diagnose(ctx context.Context) *DiagnosticReport
}

type adminService struct {
	api backend.API
	now func() time.Time
}

func NewAdminService(api backend.API) AdminService {
	return &adminService{api: api, now: time.Now}
}

func (s *adminService) List(ctx context.Context) ([]model.Admin, error) {
	return s.api.ListAdmins(ctx)
}

func (s *adminService) Get(ctx context.Context, id int64) (*model.Admin, error) {
	return s.api.GetAdmin(ctx, id)
}

func (s *adminService) Create(ctx context.Context, in model.AdminInput) (*model.Admin, error) {
	if err := validateAdmin(in, true); err != nil {
		return nil, err
	}
	return s.api.CreateAdmin(ctx, in)
}

func (s *adminService) Update(ctx context.Context, id int64, in model.AdminInput) (*model.Admin, error) {
	if err := validateAdmin(in, false); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Password) == "" {
		in.Password = ""
	}
	return s.api.UpdateAdmin(ctx, id, in)
}

func (s *adminService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteAdmin(ctx, id)
}

func validateAdmin(in model.AdminInput, creating bool) error {
	if in.Name == "" || in.Email == "" || (creating && in.Password == "") {
		return invalid(msgRequiredFields)
	}
	if !rbac.ValidRole(in.Role) {
		return invalid(fmt.Sprintf("Unknown role %q", in.Role))
	}
	return nil
}

func (s *adminService) Diagnose(ctx context.Context) *DiagnosticReport {
	report := &DiagnosticReport{}

	profile, err := s.api.Profile(ctx)
	if err != nil {
		report.ProfileError = err.Error()
	} else {
		report.Profile = profile
		report.CanCreateAdmins = rbac.IsSuperAdmin(profile.Role)
	}

	throwaway := model.AdminInput{
		Name:     "Test Staff Diagnostic",
		Email:    fmt.Sprintf("test_%d@test.com", s.now().UnixMilli()),
		Password: "password123",
		Role:     rbac.Staff,
	}
	created, err := s.api.CreateAdmin(ctx, throwaway)
	if err != nil {
		report.Message = err.Error()
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			report.Status = apiErr.Status
			report.Errors = apiErr.Errors
			if apiErr.Message != "" {
				report.Message = apiErr.Message
			}
		}
		return report
	}

	report.Success = true
	report.Message = "Admin created successfully!"
	if created != nil && created.ID != 0 {
		report.CleanedUp = s.api.DeleteAdmin(ctx, created.ID) == nil
	}
	return report
}
