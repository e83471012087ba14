package postgres

import (
	"context"
	"database/sql"

	"jobadmin/internal/model"
	"jobadmin/internal/repository"
)

// ExportPostgres is the exports table. It uses parameterized queries and contains no business logic.
type ExportPostgres struct {
	db *sql.DB
}

func NewExportPostgres(db *sql.DB) *ExportPostgres {
	return &ExportPostgres{db: db}
}

var _ repository.ExportRepository = (*ExportPostgres)(nil)

const exportColumns = `id, kind, filename, storage_path, size, rows, content_type, created_by, created_at`

func (r *ExportPostgres) Create(ctx context.Context, e *model.Export) (*model.Export, error) {
	q := `
		INSERT INTO exports (` + exportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + exportColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Kind,
		e.Filename,
		e.StoragePath,
		e.Size,
		e.Rows,
		e.ContentType,
		e.CreatedBy,
		e.CreatedAt,
	)
	var out model.Export
	if err := scanExport(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ExportPostgres) FindByID(ctx context.Context, id string) (*model.Export, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+exportColumns+` FROM exports WHERE id = $1`, id)
	var e model.Export
	if err := scanExport(row, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// List pages through exports newest first. An empty kind lists every kind.
func (r *ExportPostgres) List(ctx context.Context, kind string, pq repository.PageQuery) (*repository.PageResult[model.Export], error) {
	const qCount = `SELECT COUNT(*) FROM exports WHERE ($1 = '' OR kind = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, kind).Scan(&total); err != nil {
		return nil, err
	}

	qList := `
		SELECT ` + exportColumns + `
		FROM exports
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, kind, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Export, 0)
	for rows.Next() {
		var e model.Export
		if err := scanExport(rows, &e); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Export]{Items: items, Total: total}, nil
}

func (r *ExportPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM exports WHERE id = $1`, id)
	return err
}

func scanExport(s scanner, e *model.Export) error {
	return s.Scan(
		&e.ID,
		&e.Kind,
		&e.Filename,
		&e.StoragePath,
		&e.Size,
		&e.Rows,
		&e.ContentType,
		&e.CreatedBy,
		&e.CreatedAt,
	)
}
