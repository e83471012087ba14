package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/model"
	"jobadmin/internal/repository"
)

var auditCols = []string{"id", "actor_id", "actor_name", "role", "action", "resource", "resource_id", "outcome", "detail", "request_id", "created_at"}

func TestAuditPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditPostgres(db)
	now := time.Now().UTC()
	e := &model.AuditEntry{
		ID:         "a1",
		ActorID:    7,
		ActorName:  "Ravi",
		Role:       "super_admin",
		Action:     "approve",
		Resource:   "coupon",
		ResourceID: "42",
		Outcome:    model.OutcomeSuccess,
		RequestID:  "req-1",
		CreatedAt:  now,
	}

	mock.ExpectQuery("INSERT INTO audit_logs").
		WithArgs(e.ID, e.ActorID, e.ActorName, e.Role, e.Action, e.Resource, e.ResourceID, e.Outcome, e.Detail, e.RequestID, e.CreatedAt).
		WillReturnRows(sqlmock.NewRows(auditCols).
			AddRow(e.ID, e.ActorID, e.ActorName, e.Role, e.Action, e.Resource, e.ResourceID, e.Outcome, e.Detail, e.RequestID, e.CreatedAt))

	got, err := repo.Create(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditPostgres(db)
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT (.+) FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(auditCols).
				AddRow("a2", 1, "Ana", "staff", "create", "coupon", "9", "success", "", "", time.Now()).
				AddRow("a1", 1, "Ana", "staff", "delete", "coupon", "8", "failure", "gone", "", time.Now()))

		res, err := repo.List(ctx, repository.AuditFilter{Page: repository.PageQuery{Limit: 20}})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "a2", res.Items[0].ID)
	})

	t.Run("filters are numbered in order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs WHERE actor_id = \$1 AND outcome = \$2`).
			WithArgs(int64(3), "failure").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`FROM audit_logs WHERE actor_id = \$1 AND outcome = \$2 ORDER BY .+ LIMIT \$3 OFFSET \$4`).
			WithArgs(int64(3), "failure", 10, 10).
			WillReturnRows(sqlmock.NewRows(auditCols))

		res, err := repo.List(ctx, repository.AuditFilter{
			ActorID: 3,
			Outcome: "failure",
			Page:    repository.PageQuery{Limit: 10, Offset: 10},
		})

		require.NoError(t, err)
		assert.Zero(t, res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
