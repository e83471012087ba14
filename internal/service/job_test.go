package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiMocks "jobadmin/internal/backend/mocks"
	"jobadmin/internal/model"
)

func employerWith(limit, jobs int) *model.Employer {
	return &model.Employer{ID: 1, CompanyName: "Acme", Plan: &model.Plan{JobsCanPost: limit}, Jobs: make([]model.Job, jobs)}
}

func TestPostingQuota(t *testing.T) {
	tests := []struct {
		name     string
		employer *model.Employer
		canPost  bool
		message  string
		severity string
	}{
		{"nil employer", nil, false, "No plan assigned", ""},
		{"no plan", &model.Employer{}, false, "No plan assigned", ""},
		{"unlimited", employerWith(-1, 4), true, "Unlimited job postings (Currently: 4 jobs)", "success"},
		{"limit reached", employerWith(3, 3), false, "Job limit reached (3/3). Upgrade plan to post more.", "error"},
		{"over limit", employerWith(2, 5), false, "Job limit reached (5/2). Upgrade plan to post more.", "error"},
		{"one left", employerWith(5, 4), true, "1 job posting remaining (4/5)", "warning"},
		{"two left", employerWith(5, 3), true, "2 job postings remaining (3/5)", "warning"},
		{"plenty", employerWith(10, 1), true, "9 job postings remaining (1/10)", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := PostingQuota(tt.employer)
			assert.Equal(t, tt.canPost, q.CanPost)
			assert.Equal(t, tt.message, q.Message)
			assert.Equal(t, tt.severity, q.Severity)
		})
	}
}

func TestJobForm_Validate(t *testing.T) {
	assert.EqualError(t, JobForm{Title: "Dev"}.Validate(), "Please fill all required fields")
	assert.EqualError(t, JobForm{Title: "Dev", Description: "Go"}.Validate(), "Please select a location")
	assert.EqualError(t, JobForm{Title: "Dev", Description: "Go", LocationID: 1}.Validate(), "Please select a category")
	assert.NoError(t, JobForm{Title: "Dev", Description: "Go", LocationID: 1, CategoryID: 2}.Validate())
}

func TestJobService_CreateForEmployer(t *testing.T) {
	ctx := context.Background()
	form := JobForm{Title: "Dev", Description: "Go", Salary: "  ", LocationID: 1, CategoryID: 2}

	t.Run("quota exhausted", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		_, err := NewJobService(api).CreateForEmployer(ctx, employerWith(1, 1), form)
		assert.ErrorIs(t, err, ErrQuotaExceeded)
		api.AssertNotCalled(t, "AddJobForEmployer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty salary omitted", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("AddJobForEmployer", ctx, int64(1), model.NewJob{Title: "Dev", Description: "Go", LocationID: 1, CategoryID: 2}).
			Return(&model.Job{ID: 11}, nil)

		job, err := NewJobService(api).CreateForEmployer(ctx, employerWith(-1, 0), form)
		require.NoError(t, err)
		assert.Equal(t, int64(11), job.ID)
		api.AssertExpectations(t)
	})
}

func TestJobService_Catalogs(t *testing.T) {
	api := new(apiMocks.MockAPI)
	api.On("ListCatalog", mock.Anything, model.Locations).Return([]model.CatalogItem{{ID: 1, Name: "Pune", State: "MH"}}, nil)
	api.On("ListCatalog", mock.Anything, model.Categories).Return([]model.CatalogItem{{ID: 2, Name: "IT"}}, nil)

	got, err := NewJobService(api).Catalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pune, MH", got.Locations[0].Label())
	assert.Equal(t, "IT", got.Categories[0].Name)
}
