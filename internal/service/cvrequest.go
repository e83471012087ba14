package service

import (
	"context"
	"fmt"
	"slices"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

type CVRequestService interface {
	List(ctx context.Context, status string) ([]model.CVRequest, error)
	// UpdateStatus moves a request from current to next. Empty and unchanged statuses are refused.
	// A blank current is looked up from the request list.
	UpdateStatus(ctx context.Context, id int64, current, next string) error
}

type cvRequestService struct {
	api backend.API
}

func NewCVRequestService(api backend.API) CVRequestService {
	return &cvRequestService{api: api}
}

func (s *cvRequestService) List(ctx context.Context, status string) ([]model.CVRequest, error) {
	return s.api.ListCVRequests(ctx, status)
}

func (s *cvRequestService) UpdateStatus(ctx context.Context, id int64, current, next string) error {
	if next == "" {
		return invalid("Please select a status")
	}
	if !slices.Contains(model.CVStatuses, next) {
		return invalid("Unknown status " + next)
	}
	if current == "" {
		var err error
		if current, err = s.currentStatus(ctx, id); err != nil {
			return err
		}
	}
	if next == current {
		return ErrNoChange
	}
	return s.api.UpdateCVRequestStatus(ctx, id, next)
}

func (s *cvRequestService) currentStatus(ctx context.Context, id int64) (string, error) {
	all, err := s.api.ListCVRequests(ctx, "")
	if err != nil {
		return "", fmt.Errorf("look up cv request %d: %w", id, err)
	}
	for _, r := range all {
		if r.ID == id {
			return r.Status, nil
		}
	}
	return "", nil
}
