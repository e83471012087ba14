package repository

import (
	"context"

	"jobadmin/internal/model"
)

// AuditFilter narrows the audit listing. Zero values match everything.
type AuditFilter struct {
	ActorID  int64
	Resource string
	Outcome  string
	Page     PageQuery
}

// AuditRepository is append-only storage for console actions.
type AuditRepository interface {
	// Create inserts an entry and returns it as stored.
	Create(ctx context.Context, e *model.AuditEntry) (*model.AuditEntry, error)

	// List returns entries newest first.
	List(ctx context.Context, f AuditFilter) (*PageResult[model.AuditEntry], error)
}
