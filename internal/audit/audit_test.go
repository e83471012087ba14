package audit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"jobadmin/internal/model"
	"jobadmin/internal/repository"
	"jobadmin/internal/repository/mocks"
)

func TestEntry(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	actor := model.Admin{ID: 4, Name: "Ravi", Role: "manager"}

	ok := Entry(Event{Actor: actor, Action: "create", Resource: "coupon", ResourceID: "9", RequestID: "r1"}, at)
	assert.NotEmpty(t, ok.ID)
	assert.Equal(t, "manager", ok.Role)
	assert.Equal(t, model.OutcomeSuccess, ok.Outcome)
	assert.Empty(t, ok.Detail)
	assert.Equal(t, time.UTC, ok.CreatedAt.Location())

	failed := Entry(Event{Actor: actor, Role: "super_admin", Action: "delete", Resource: "admin", Err: errors.New(strings.Repeat("x", 600))}, at)
	assert.Equal(t, "super_admin", failed.Role)
	assert.Equal(t, model.OutcomeFailure, failed.Outcome)
	assert.Len(t, failed.Detail, maxDetailLen)
}

func TestRecorder_Record(t *testing.T) {
	repo := new(mocks.MockAuditRepository)
	core, logs := observer.New(zap.ErrorLevel)
	r := NewRecorder(repo, zap.New(core))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "approve" && e.ResourceID == "42"
	})).Return(&model.AuditEntry{}, nil).Once()
	r.Record(context.Background(), Event{Action: "approve", Resource: "coupon", ResourceID: "42"})
	assert.Zero(t, logs.Len())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
	r.Record(context.Background(), Event{Action: "delete", Resource: "plan", ResourceID: "3"})

	require.Equal(t, 1, logs.FilterMessage("audit_record_failed").Len())
	assert.Equal(t, "plan", logs.All()[0].ContextMap()["resource"])
	repo.AssertExpectations(t)
}

func TestRecorder_List(t *testing.T) {
	tests := []struct {
		name string
		in   Query
		want repository.AuditFilter
	}{
		{
			name: "defaults",
			in:   Query{},
			want: repository.AuditFilter{Page: repository.PageQuery{Limit: defaultLimit}},
		},
		{
			name: "third page",
			in:   Query{Resource: "coupon", Page: 3, PerPage: 20},
			want: repository.AuditFilter{Resource: "coupon", Page: repository.PageQuery{Limit: 20, Offset: 40}},
		},
		{
			name: "per page capped",
			in:   Query{Outcome: "failure", PerPage: 1000},
			want: repository.AuditFilter{Outcome: "failure", Page: repository.PageQuery{Limit: maxLimit}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockAuditRepository)
			repo.On("List", mock.Anything, tt.want).
				Return(&repository.PageResult[model.AuditEntry]{Items: []model.AuditEntry{{ID: "a"}}, Total: 1}, nil)

			res, err := NewRecorder(repo, zap.NewNop()).List(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, 1, res.Total)
			assert.Equal(t, tt.want.Page.Limit, res.PerPage)
			repo.AssertExpectations(t)
		})
	}
}

func TestNop(t *testing.T) {
	r := Nop()
	r.Record(context.Background(), Event{Action: "create"})

	res, err := r.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Zero(t, res.Total)
}
