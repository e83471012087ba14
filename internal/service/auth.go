package service

import (
	"context"
	"fmt"

	"jobadmin/internal/backend"
	"jobadmin/internal/session"
)

// AuthService signs admins in and out.
type AuthService interface {
	// Login authenticates against the backend and stores a session when a token is issued.
	Login(ctx context.Context, identifier, password string) (*session.Session, error)
	// Logout revokes the backend token and always deletes the session.
	Logout(ctx context.Context, s *session.Session) error
	// Current loads a stored session.
	Current(ctx context.Context, id string) (*session.Session, error)
}

type authService struct {
	api   backend.API
	store session.Store
}

func NewAuthService(api backend.API, store session.Store) AuthService {
	return &authService{api: api, store: store}
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*session.Session, error) {
	if identifier == "" || password == "" {
		return nil, invalid("Please enter both email and password")
	}

	res, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		msg := res.Message
		if msg == "" {
			msg = "Login failed. Please try again."
		}
		return nil, fmt.Errorf("%w: %s", ErrLoginRejected, msg)
	}

	sess := session.New(res.Token, res.UserType, res.User)
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	apiErr := s.api.Logout(backend.WithToken(ctx, sess.Token))
	if err := s.store.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return apiErr
}

func (s *authService) Current(ctx context.Context, id string) (*session.Session, error) {
	return s.store.Get(ctx, id)
}
