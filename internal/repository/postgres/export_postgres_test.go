package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/model"
	"jobadmin/internal/repository"
)

var exportCols = []string{"id", "kind", "filename", "storage_path", "size", "rows", "content_type", "created_by", "created_at"}

func TestExportPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExportPostgres(db)
	now := time.Now().UTC()
	e := &model.Export{
		ID:          "e1",
		Kind:        "employees",
		Filename:    "employees-20250101.csv",
		StoragePath: "exports/employees/e1.csv",
		Size:        512,
		Rows:        12,
		ContentType: "text/csv",
		CreatedBy:   7,
		CreatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO exports").
		WithArgs(e.ID, e.Kind, e.Filename, e.StoragePath, e.Size, e.Rows, e.ContentType, e.CreatedBy, e.CreatedAt).
		WillReturnRows(sqlmock.NewRows(exportCols).
			AddRow(e.ID, e.Kind, e.Filename, e.StoragePath, e.Size, e.Rows, e.ContentType, e.CreatedBy, e.CreatedAt))

	got, err := repo.Create(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, e.StoragePath, got.StoragePath)
	assert.Equal(t, 12, got.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExportPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM exports WHERE id = \$1`).
			WithArgs("e1").
			WillReturnRows(sqlmock.NewRows(exportCols).
				AddRow("e1", "jobs", "jobs.csv", "exports/jobs/e1.csv", 10, 1, "text/csv", 1, time.Now()))

		e, err := repo.FindByID(ctx, "e1")

		require.NoError(t, err)
		assert.Equal(t, "jobs", e.Kind)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM exports WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		e, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, e)
	})
}

func TestExportPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExportPostgres(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM exports`).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM exports`).
		WithArgs("orders", 10, 0).
		WillReturnRows(sqlmock.NewRows(exportCols).
			AddRow("e1", "orders", "orders.csv", "exports/orders/e1.csv", 10, 1, "text/csv", 1, time.Now()))

	res, err := repo.List(context.Background(), "orders", repository.PageQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExportPostgres(db)

	mock.ExpectExec(`DELETE FROM exports WHERE id = \$1`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
