package service

import (
	"context"
	"fmt"
	"strings"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

// Quota describes whether an employer may post another job under its plan.
type Quota struct {
	CanPost   bool   `json:"can_post"`
	Unlimited bool   `json:"unlimited"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Message   string `json:"message"`
	Severity  string `json:"severity,omitempty"`
}

// PostingQuota computes the job quota from the employer's plan and its current jobs.
func PostingQuota(e *model.Employer) Quota {
	if e == nil || e.Plan == nil {
		return Quota{Message: "No plan assigned"}
	}
	used := len(e.Jobs)
	limit := e.Plan.JobsCanPost
	if limit == model.Unlimited {
		return Quota{
			CanPost:   true,
			Unlimited: true,
			Used:      used,
			Limit:     limit,
			Message:   fmt.Sprintf("Unlimited job postings (Currently: %d jobs)", used),
			Severity:  "success",
		}
	}

	remaining := limit - used
	if remaining <= 0 {
		return Quota{
			Used:     used,
			Limit:    limit,
			Message:  fmt.Sprintf("Job limit reached (%d/%d). Upgrade plan to post more.", used, limit),
			Severity: "error",
		}
	}

	plural := "s"
	if remaining == 1 {
		plural = ""
	}
	severity := "info"
	if remaining <= 2 {
		severity = "warning"
	}
	return Quota{
		CanPost:   true,
		Used:      used,
		Limit:     limit,
		Remaining: remaining,
		Message:   fmt.Sprintf("%d job posting%s remaining (%d/%d)", remaining, plural, used, limit),
		Severity:  severity,
	}
}

// JobForm is the add-job dialog.
type JobForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	LocationID  int64  `json:"location_id"`
	CategoryID  int64  `json:"category_id"`
}

func (f JobForm) Validate() error {
	if f.Title == "" || f.Description == "" {
		return invalid(msgRequiredFields)
	}
	if f.LocationID == 0 {
		return invalid("Please select a location")
	}
	if f.CategoryID == 0 {
		return invalid("Please select a category")
	}
	return nil
}

// JobCatalogs are the option lists of the add-job dialog.
type JobCatalogs struct {
	Locations  []model.CatalogItem `json:"locations"`
	Categories []model.CatalogItem `json:"categories"`
}

type JobService interface {
	List(ctx context.Context, q model.ListQuery) (*model.Page[model.Job], error)
	Catalogs(ctx context.Context) (*JobCatalogs, error)
	// CreateForEmployer posts a job for the employer after checking its quota and the form.
	CreateForEmployer(ctx context.Context, employer *model.Employer, f JobForm) (*model.Job, error)
}

type jobService struct {
	api backend.API
}

func NewJobService(api backend.API) JobService {
	return &jobService{api: api}
}

func (s *jobService) List(ctx context.Context, q model.ListQuery) (*model.Page[model.Job], error) {
	return s.api.ListJobs(ctx, normalizeQuery(q))
}

func (s *jobService) Catalogs(ctx context.Context) (*JobCatalogs, error) {
	lists, err := loadCatalogs(ctx, s.api, model.Locations, model.Categories)
	if err != nil {
		return nil, err
	}
	return &JobCatalogs{Locations: lists[model.Locations], Categories: lists[model.Categories]}, nil
}

func (s *jobService) CreateForEmployer(ctx context.Context, employer *model.Employer, f JobForm) (*model.Job, error) {
	if q := PostingQuota(employer); !q.CanPost {
		return nil, fmt.Errorf("%w: %s", ErrQuotaExceeded, q.Message)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.api.AddJobForEmployer(ctx, employer.ID, model.NewJob{
		Title:       f.Title,
		Description: f.Description,
		Salary:      strings.TrimSpace(f.Salary),
		LocationID:  f.LocationID,
		CategoryID:  f.CategoryID,
	})
}
