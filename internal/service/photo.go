package service

import (
	"context"
	"strings"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

type ProfilePhotoService interface {
	// List returns employees whose photo has the given review status; empty means pending.
	List(ctx context.Context, status string) (*model.PhotoList, error)
	Approve(ctx context.Context, employeeID int64) error
	Reject(ctx context.Context, employeeID int64, reason string) error
	// PhotoURL resolves where an employee's photo can be fetched from.
	PhotoURL(e model.Employee) string
}

type profilePhotoService struct {
	api     backend.API
	baseURL string
}

// NewProfilePhotoService needs the API base URL to resolve relative photo paths.
func NewProfilePhotoService(api backend.API, apiBaseURL string) ProfilePhotoService {
	return &profilePhotoService{api: api, baseURL: apiBaseURL}
}

func (s *profilePhotoService) List(ctx context.Context, status string) (*model.PhotoList, error) {
	if status == "" {
		status = model.PhotoPending
	}
	res, err := s.api.ProfilePhotos(ctx, status)
	if err != nil {
		return nil, err
	}
	if res.Employees == nil {
		res.Employees = []model.Employee{}
	}
	return res, nil
}

func (s *profilePhotoService) Approve(ctx context.Context, employeeID int64) error {
	return s.api.UpdateProfilePhotoStatus(ctx, employeeID, model.PhotoApproved, "")
}

func (s *profilePhotoService) Reject(ctx context.Context, employeeID int64, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return invalid("Please provide a rejection reason")
	}
	return s.api.UpdateProfilePhotoStatus(ctx, employeeID, model.PhotoRejected, reason)
}

func (s *profilePhotoService) PhotoURL(e model.Employee) string {
	return PhotoURL(s.baseURL, e)
}

// PhotoURL prefers the absolute URL the backend provides and falls back to the relative path
// served from the API host.
func PhotoURL(apiBaseURL string, e model.Employee) string {
	if e.ProfilePhotoFullURL != "" {
		return e.ProfilePhotoFullURL
	}
	if e.ProfilePhotoURL == "" {
		return ""
	}
	return strings.Replace(apiBaseURL, "/api/v1", "", 1) + e.ProfilePhotoURL
}
