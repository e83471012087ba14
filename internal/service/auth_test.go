package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/backend"
	apiMocks "jobadmin/internal/backend/mocks"
	"jobadmin/internal/model"
	"jobadmin/internal/session"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	root := model.Admin{ID: 1, Name: "Root", Role: "super_admin"}

	tests := []struct {
		name       string
		identifier string
		password   string
		setupMocks func(m *apiMocks.MockAPI)
		wantErr    error
		wantSaved  bool
	}{
		{
			name:       "blank fields",
			identifier: "root@example.com",
			wantErr:    ErrValidation,
		},
		{
			name:       "happy path",
			identifier: "root@example.com",
			password:   "secret",
			setupMocks: func(m *apiMocks.MockAPI) {
				m.On("Login", ctx, "root@example.com", "secret").
					Return(&model.LoginResult{Token: "tok", UserType: "admin", User: root}, nil)
			},
			wantSaved: true,
		},
		{
			name:       "no token issued",
			identifier: "root@example.com",
			password:   "secret",
			setupMocks: func(m *apiMocks.MockAPI) {
				m.On("Login", ctx, "root@example.com", "secret").
					Return(&model.LoginResult{Message: "Account disabled"}, nil)
			},
			wantErr: ErrLoginRejected,
		},
		{
			name:       "backend rejects credentials",
			identifier: "root@example.com",
			password:   "wrong",
			setupMocks: func(m *apiMocks.MockAPI) {
				m.On("Login", ctx, "root@example.com", "wrong").
					Return(nil, &backend.APIError{Status: 401, Message: "Invalid credentials"})
			},
			wantErr: backend.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(apiMocks.MockAPI)
			if tt.setupMocks != nil {
				tt.setupMocks(api)
			}
			store := session.NewMemoryStore(0)
			svc := NewAuthService(api, store)

			sess, err := svc.Login(ctx, tt.identifier, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sess)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "tok", sess.Token)
				assert.Equal(t, "super_admin", sess.Role)

				stored, err := svc.Current(ctx, sess.ID)
				require.NoError(t, err)
				assert.Equal(t, sess.Token, stored.Token)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginBlankMessage(t *testing.T) {
	svc := NewAuthService(new(apiMocks.MockAPI), session.NewMemoryStore(0))
	_, err := svc.Login(context.Background(), "", "")
	assert.EqualError(t, err, "Please enter both email and password")
}

func TestAuthService_LogoutAlwaysDeletes(t *testing.T) {
	ctx := context.Background()
	api := new(apiMocks.MockAPI)
	api.On("Logout", mock.MatchedBy(func(c context.Context) bool {
		return backend.TokenFromContext(c) == "tok"
	})).Return(errors.New("network down"))

	store := session.NewMemoryStore(0)
	sess := session.New("tok", "admin", model.Admin{ID: 1})
	require.NoError(t, store.Save(ctx, sess))

	err := NewAuthService(api, store).Logout(ctx, sess)
	assert.EqualError(t, err, "network down")

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	api.AssertExpectations(t)
}
