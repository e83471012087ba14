package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/model"
	"jobadmin/internal/session"
)

var secret = strings.Repeat("s", 32)

func TestIssueAndParse(t *testing.T) {
	j := NewJWT(secret, "jobadmin", time.Hour)
	s := session.New("backend-token", "admin", model.Admin{ID: 3, Role: "manager"})

	raw, exp, err := j.Issue(s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
	assert.NotContains(t, raw, "backend-token")

	claims, err := j.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, s.ID, claims.Subject)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "admin", claims.UserType)
}

func TestParse_Rejects(t *testing.T) {
	j := NewJWT(secret, "jobadmin", time.Hour)
	s := session.New("t", "admin", model.Admin{Role: "staff"})

	t.Run("expired", func(t *testing.T) {
		old := NewJWT(secret, "jobadmin", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		raw, _, err := old.Issue(s)
		require.NoError(t, err)

		_, err = j.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw, _, err := NewJWT(strings.Repeat("x", 32), "jobadmin", time.Hour).Issue(s)
		require.NoError(t, err)

		_, err = j.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		raw, _, err := NewJWT(secret, "someone-else", time.Hour).Issue(s)
		require.NoError(t, err)

		_, err = j.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: s.ID, Issuer: "jobadmin"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = j.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := j.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
