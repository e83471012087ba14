package repository

import (
	"context"

	"jobadmin/internal/model"
)

// ExportRepository keeps the metadata of CSV exports. The files live in object storage.
type ExportRepository interface {
	Create(ctx context.Context, e *model.Export) (*model.Export, error)

	// FindByID returns sql.ErrNoRows when the export does not exist.
	FindByID(ctx context.Context, id string) (*model.Export, error)

	List(ctx context.Context, kind string, pq PageQuery) (*PageResult[model.Export], error)

	// Delete returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
