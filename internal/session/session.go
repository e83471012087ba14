// Package session keeps the signed-in admin between requests: the backend token, the user type,
// the role and the admin record.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobadmin/internal/model"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Session is one signed-in admin.
type Session struct {
	ID        string      `json:"id" yaml:"id"`
	Token     string      `json:"token" yaml:"token"`
	UserType  string      `json:"user_type" yaml:"user_type"`
	Role      string      `json:"role" yaml:"role"`
	User      model.Admin `json:"user" yaml:"user"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
}

// New builds a session for a successful login. Role comes from the admin record.
func New(token, userType string, user model.Admin) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserType:  userType,
		Role:      user.Role,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists sessions.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type ctxKey struct{}

// WithSession attaches s to ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
