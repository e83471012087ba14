// Package audit records mutating console actions and lists them back for super admins.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobadmin/internal/model"
	"jobadmin/internal/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 200
	maxDetailLen = 500
)

// Event describes one console action. Err nil means it succeeded.
type Event struct {
	Actor      model.Admin
	Role       string
	Action     string
	Resource   string
	ResourceID string
	RequestID  string
	Err        error
}

// Query is the GET /api/audit filter. Page is 1-based.
type Query struct {
	ActorID  int64
	Resource string
	Outcome  string
	Page     int
	PerPage  int
}

// ListResult is one page of the audit trail.
type ListResult struct {
	Items   []model.AuditEntry `json:"data"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

// Recorder writes and reads the audit trail.
type Recorder interface {
	// Record stores the event. A storage failure is logged and never reaches the caller:
	// the action it describes already happened.
	Record(ctx context.Context, ev Event)
	List(ctx context.Context, q Query) (*ListResult, error)
}

type recorder struct {
	repo repository.AuditRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewRecorder(repo repository.AuditRepository, log *zap.Logger) Recorder {
	return &recorder{repo: repo, log: log, now: time.Now}
}

func (r *recorder) Record(ctx context.Context, ev Event) {
	e := Entry(ev, r.now())
	if _, err := r.repo.Create(ctx, e); err != nil {
		r.log.Error("audit_record_failed",
			zap.String("action", e.Action),
			zap.String("resource", e.Resource),
			zap.String("resource_id", e.ResourceID),
			zap.String("request_id", e.RequestID),
			zap.Error(err),
		)
	}
}

func (r *recorder) List(ctx context.Context, q Query) (*ListResult, error) {
	page, perPage := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultLimit
	}
	if perPage > maxLimit {
		perPage = maxLimit
	}
	res, err := r.repo.List(ctx, repository.AuditFilter{
		ActorID:  q.ActorID,
		Resource: q.Resource,
		Outcome:  q.Outcome,
		Page:     repository.PageQuery{Limit: perPage, Offset: (page - 1) * perPage},
	})
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: res.Items, Total: res.Total, Page: page, PerPage: perPage}, nil
}

// Entry converts an event into the stored row.
func Entry(ev Event, at time.Time) *model.AuditEntry {
	e := &model.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    ev.Actor.ID,
		ActorName:  ev.Actor.Name,
		Role:       ev.Role,
		Action:     ev.Action,
		Resource:   ev.Resource,
		ResourceID: ev.ResourceID,
		Outcome:    model.OutcomeSuccess,
		RequestID:  ev.RequestID,
		CreatedAt:  at.UTC(),
	}
	if e.Role == "" {
		e.Role = ev.Actor.Role
	}
	if ev.Err != nil {
		e.Outcome = model.OutcomeFailure
		e.Detail = ev.Err.Error()
		if len(e.Detail) > maxDetailLen {
			e.Detail = e.Detail[:maxDetailLen]
		}
	}
	return e
}

type nopRecorder struct{}

// Nop is used when no audit database is configured. List returns an empty page.
func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) Record(context.Context, Event) {}

func (nopRecorder) List(context.Context, Query) (*ListResult, error) {
	return &ListResult{Items: []model.AuditEntry{}, Page: 1, PerPage: defaultLimit}, nil
}
