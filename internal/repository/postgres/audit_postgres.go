package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"jobadmin/internal/model"
	"jobadmin/internal/repository"
)

// AuditPostgres stores audit entries in the audit_logs table.
type AuditPostgres struct {
	db *sql.DB
}

func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

const auditColumns = `id, actor_id, actor_name, role, action, resource, resource_id, outcome, detail, request_id, created_at`

func (r *AuditPostgres) Create(ctx context.Context, e *model.AuditEntry) (*model.AuditEntry, error) {
	q := `
		INSERT INTO audit_logs (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + auditColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.ActorID,
		e.ActorName,
		e.Role,
		e.Action,
		e.Resource,
		e.ResourceID,
		e.Outcome,
		e.Detail,
		e.RequestID,
		e.CreatedAt,
	)
	var out model.AuditEntry
	if err := scanAudit(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AuditPostgres) List(ctx context.Context, f repository.AuditFilter) (*repository.PageResult[model.AuditEntry], error) {
	var (
		conds []string
		args  []any
	)
	if f.ActorID != 0 {
		args = append(args, f.ActorID)
		conds = append(conds, fmt.Sprintf("actor_id = $%d", len(args)))
	}
	if f.Resource != "" {
		args = append(args, f.Resource)
		conds = append(conds, fmt.Sprintf("resource = $%d", len(args)))
	}
	if f.Outcome != "" {
		args = append(args, f.Outcome)
		conds = append(conds, fmt.Sprintf("outcome = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_logs"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf("SELECT %s FROM audit_logs%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		auditColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, qList, append(args, f.Page.Limit, f.Page.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AuditEntry, 0)
	for rows.Next() {
		var e model.AuditEntry
		if err := scanAudit(rows, &e); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.AuditEntry]{Items: items, Total: total}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAudit(s scanner, e *model.AuditEntry) error {
	return s.Scan(
		&e.ID,
		&e.ActorID,
		&e.ActorName,
		&e.Role,
		&e.Action,
		&e.Resource,
		&e.ResourceID,
		&e.Outcome,
		&e.Detail,
		&e.RequestID,
		&e.CreatedAt,
	)
}
