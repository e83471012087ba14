// Package export writes list screens to CSV files in object storage and hands out
// time-limited download links.
package export

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
	"jobadmin/internal/repository"
	"jobadmin/internal/service"
	"jobadmin/internal/storage"
)

const (
	contentType = "text/csv"
	pageSize    = 100
	maxPages    = 200
	keyPrefix   = "exports"
)

var (
	ErrUnknownKind = errors.New("unknown export kind")
	ErrIDRequired  = errors.New("id is required")
	ErrNotFound    = errors.New("export not found")
)

// ListResult is one page of export records.
type ListResult struct {
	Items []model.Export `json:"data"`
	Total int            `json:"total"`
}

// Service manages CSV exports.
type Service interface {
	// Create fetches every page of the requested list, uploads it as CSV and records it.
	// The uploaded object is removed again if the record cannot be saved.
	Create(ctx context.Context, req Request) (*model.Export, error)
	List(ctx context.Context, kind string, limit, offset int) (*ListResult, error)
	// Get returns the record with a fresh presigned URL.
	Get(ctx context.Context, id string) (*model.Export, error)
	// Open streams the file; the caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Export, error)
	Delete(ctx context.Context, id string) error
}

type exportService struct {
	api           backend.API
	commissionSvc service.CommissionService
	store         storage.Storage
	repo          repository.ExportRepository
	urlExpiry     time.Duration
	now           func() time.Time
}

func NewService(api backend.API, commissions service.CommissionService, store storage.Storage, repo repository.ExportRepository, urlExpiry time.Duration) Service {
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	return &exportService{
		api:           api,
		commissionSvc: commissions,
		store:         store,
		repo:          repo,
		urlExpiry:     urlExpiry,
		now:           time.Now,
	}
}

func (s *exportService) Create(ctx context.Context, req Request) (*model.Export, error) {
	if _, ok := ParseKind(string(req.Kind)); !ok {
		return nil, ErrUnknownKind
	}
	t, err := s.build(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.Kind, err)
	}

	var buf bytes.Buffer
	if err := writeCSV(&buf, t); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}

	now := s.now().UTC()
	exportID := uuid.New().String()
	key := path.Join(keyPrefix, string(req.Kind), exportID+".csv")
	filename := fmt.Sprintf("%s-%s.csv", req.Kind, now.Format("20060102-150405"))

	info, err := s.store.Put(ctx, key, bytes.NewReader(buf.Bytes()), storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: contentType,
		Metadata:    map[string]string{"filename": filename, "kind": string(req.Kind)},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Export{
		ID:          exportID,
		Kind:        string(req.Kind),
		Filename:    filename,
		StoragePath: info.Key,
		Size:        info.Size,
		Rows:        len(t.rows),
		ContentType: contentType,
		CreatedBy:   req.Actor.ID,
		CreatedAt:   now,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	stored.URL, err = s.store.PresignGet(ctx, stored.StoragePath, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}
	return stored, nil
}

func (s *exportService) List(ctx context.Context, kind string, limit, offset int) (*ListResult, error) {
	if kind != "" {
		if _, ok := ParseKind(kind); !ok {
			return nil, ErrUnknownKind
		}
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, kind, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *exportService) find(ctx context.Context, id string) (*model.Export, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *exportService) Get(ctx context.Context, id string) (*model.Export, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	e.URL, err = s.store.PresignGet(ctx, e.StoragePath, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}
	return e, nil
}

func (s *exportService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Export, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, e.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return rc, e, nil
}

// Delete removes the file first and keeps the record if that fails, so the file stays reachable.
func (s *exportService) Delete(ctx context.Context, id string) error {
	e, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, e.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func writeCSV(w io.Writer, t *table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteCSV renders the requested list to w without storing it. It returns the number of rows.
func WriteCSV(ctx context.Context, api backend.API, commissions service.CommissionService, req Request, w io.Writer) (int, error) {
	if _, ok := ParseKind(string(req.Kind)); !ok {
		return 0, ErrUnknownKind
	}
	s := &exportService{api: api, commissionSvc: commissions}
	t, err := s.build(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", req.Kind, err)
	}
	if err := writeCSV(w, t); err != nil {
		return 0, fmt.Errorf("encode csv: %w", err)
	}
	return len(t.rows), nil
}
