package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiMocks "jobadmin/internal/backend/mocks"
	"jobadmin/internal/model"
)

func validDraft() *EmployeeDraft {
	return &EmployeeDraft{
		Basic: BasicInfo{
			Email: "mia@example.com", Mobile: "9999999999", Name: "Mia",
			Password: "secret1", ConfirmPassword: "secret1", Gender: "female",
		},
		Personal: PersonalDetails{
			DOB: "1998-04-12", Street: "1 Main St", City: "Pune", State: "MH", Zip: "411001", Country: "India",
		},
	}
}

func TestBasicInfo_Validate(t *testing.T) {
	tests := []struct {
		name string
		edit func(b *BasicInfo)
		want string
	}{
		{"ok", func(b *BasicInfo) {}, ""},
		{"missing mobile", func(b *BasicInfo) { b.Mobile = "" }, "Please fill all required fields"},
		{"mismatch", func(b *BasicInfo) { b.ConfirmPassword = "other1" }, "Passwords do not match"},
		{"short", func(b *BasicInfo) { b.Password, b.ConfirmPassword = "abc12", "abc12" }, "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validDraft().Basic
			tt.edit(&b)
			err := b.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestEmployeeDraft_ValidateStep(t *testing.T) {
	d := validDraft()
	d.Personal.Zip = ""

	assert.NoError(t, d.ValidateStep(StepBasicInfo))
	assert.EqualError(t, d.ValidateStep(StepPersonalDetails), "Please fill all required fields")
	assert.NoError(t, d.ValidateStep(StepProfessionalInfo))

	d.Personal.Zip = "411001"
	d.Personal.DOB = "12/04/1998"
	assert.ErrorIs(t, d.ValidateStep(StepPersonalDetails), ErrValidation)
}

func TestEmployeeDraft_Payload(t *testing.T) {
	d := validDraft()
	d.Education = []model.EducationEntry{
		{Degree: "BSc", University: "MIT", Field: "Physics"},
		{Degree: "MSc", University: "MIT"},
	}
	d.Experience = []model.ExperienceEntry{
		{Company: "Acme", Title: "Engineer"},
		{Company: "Globex"},
	}
	d.Skills = *NewSkillPicker([]model.CatalogItem{{ID: 1, Name: "Go"}})
	d.Skills.Select(1)
	d.Skills.AddCustom("Rust")

	p := d.Payload()
	assert.Len(t, p.Education, 1)
	assert.Len(t, p.Experience, 1)
	assert.Equal(t, []any{int64(1), "Rust"}, p.Skills)
	assert.Equal(t, "Pune", p.Address.City)
	assert.Equal(t, "1998-04-12", p.DOB)
}

func TestSkillPicker(t *testing.T) {
	p := NewSkillPicker([]model.CatalogItem{
		{ID: 1, Name: "Go"},
		{ID: 2, Name: "Golang Testing"},
		{ID: 3, Name: "Python"},
	})

	assert.Len(t, p.Search("GO"), 2)
	p.Select(1)
	if diff := cmp.Diff([]model.CatalogItem{{ID: 2, Name: "Golang Testing"}}, p.Search("go")); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	p.AddCustom("  python ")
	assert.Equal(t, []int64{1, 3}, p.Selected, "catalog match selects the skill")
	assert.Empty(t, p.Custom)

	p.AddCustom("Kubernetes")
	p.AddCustom("kubernetes")
	p.AddCustom("   ")
	assert.Equal(t, []string{"Kubernetes"}, p.Custom)

	p.Select(3)
	assert.Equal(t, []int64{1, 3}, p.Selected)

	p.Remove(1)
	p.RemoveCustom("Kubernetes")
	assert.Equal(t, []int64{3}, p.Selected)
	assert.Empty(t, p.Custom)
	assert.Equal(t, []model.CatalogItem{{ID: 3, Name: "Python"}}, p.SelectedSkills())
}

func TestEmployeeService_Catalogs(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	for _, kind := range []model.CatalogKind{model.Skills, model.Degrees, model.Universities, model.FieldsOfStudy, model.Companies, model.JobTitles} {
		api.On("ListCatalog", mock.Anything, kind).Return([]model.CatalogItem{{ID: 1, Name: string(kind)}}, nil)
	}
	api.On("ListCatalog", mock.Anything, model.EducationLevels).Return([]model.CatalogItem{
		{ID: 3, Name: "Masters", Order: 3},
		{ID: 1, Name: "School", Order: 1},
		{ID: 2, Name: "Bachelors", Order: 2},
	}, nil)

	got, err := NewEmployeeService(api).Catalogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "School", got.EducationLevels[0].Name)
	assert.Equal(t, "Masters", got.EducationLevels[2].Name)
	assert.Equal(t, "job-titles", got.JobTitles[0].Name)
	api.AssertNumberOfCalls(t, "ListCatalog", 7)
}

func TestEmployeeService_CatalogsFailure(t *testing.T) {
	api := new(apiMocks.MockAPI)
	api.On("ListCatalog", mock.Anything, model.Degrees).Return(nil, errors.New("boom"))
	api.On("ListCatalog", mock.Anything, mock.Anything).Return([]model.CatalogItem{}, nil)

	_, err := NewEmployeeService(api).Catalogs(context.Background())
	assert.ErrorContains(t, err, "load degrees: boom")
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid draft never reaches backend", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		d := validDraft()
		d.Personal.City = ""
		_, err := NewEmployeeService(api).Create(ctx, d)
		assert.ErrorIs(t, err, ErrValidation)
		api.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("submits payload", func(t *testing.T) {
		api := new(apiMocks.MockAPI)
		api.On("CreateEmployee", ctx, mock.MatchedBy(func(in model.NewEmployee) bool {
			return in.Email == "mia@example.com" && in.Password == "secret1" && len(in.Skills) == 0
		})).Return(&model.Employee{ID: 5}, nil)

		e, err := NewEmployeeService(api).Create(ctx, validDraft())
		require.NoError(t, err)
		assert.Equal(t, int64(5), e.ID)
		api.AssertExpectations(t)
	})
}

func TestEmployeeService_ListDefaultsPage(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("ListEmployees", ctx, model.ListQuery{Page: 1, Search: "mia"}).
		Return(&model.Page[model.Employee]{Data: []model.Employee{}}, nil)

	_, err := NewEmployeeService(api).List(ctx, model.ListQuery{Search: " mia "})
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestEmployeeService_UpgradePlanRequiresPlan(t *testing.T) {
	err := NewEmployeeService(new(apiMocks.MockAPI)).UpgradePlan(context.Background(), 3, 0)
	assert.EqualError(t, err, "Please select a plan")
}
