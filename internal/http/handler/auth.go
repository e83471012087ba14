package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/backend"
	"jobadmin/internal/http/middleware"
	"jobadmin/internal/model"
	"jobadmin/internal/rbac"
	"jobadmin/internal/service"
	"jobadmin/internal/session"
	"jobadmin/internal/token"
)

// TokenCookie holds the console token for browser clients; API clients send a bearer header.
const TokenCookie = "jobadmin_token"

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Message   string          `json:"message"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	UserType  string          `json:"user_type"`
	Role      string          `json:"role"`
	User      model.Admin     `json:"user"`
	Menu      []rbac.MenuItem `json:"menu"`
}

type meResponse struct {
	User      model.Admin `json:"user"`
	UserType  string      `json:"user_type"`
	Role      string      `json:"role"`
	RoleLabel string      `json:"role_label"`
}

// Login signs in against the backend, stores the session and returns a console token.
func Login(auth service.AuthService, tokens *token.JWT, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.Identifier = strings.TrimSpace(req.Identifier)

		sess, err := auth.Login(c.UserContext(), req.Identifier, req.Password)
		if err != nil {
			var verr *service.ValidationError
			if !errors.As(err, &verr) {
				rec.Record(c.UserContext(), audit.Event{
					Actor:     model.Admin{Name: req.Identifier},
					Action:    "login",
					Resource:  "session",
					RequestID: middleware.RequestIDFrom(c),
					Err:       err,
				})
			}
			if errors.Is(err, backend.ErrUnauthorized) {
				// The login endpoint's 401 is a credential failure, not an expired session.
				return writeError(c, fiber.StatusUnauthorized, "LOGIN_FAILED", backend.Message(err, "Invalid credentials"))
			}
			return respondError(c, err, "Login failed. Please try again.")
		}

		raw, exp, err := tokens.Issue(sess)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		rec.Record(c.UserContext(), audit.Event{
			Actor:      sess.User,
			Role:       sess.Role,
			Action:     "login",
			Resource:   "session",
			ResourceID: sess.ID,
			RequestID:  middleware.RequestIDFrom(c),
		})

		c.Cookie(&fiber.Cookie{
			Name:     TokenCookie,
			Value:    raw,
			Expires:  exp,
			HTTPOnly: true,
			Secure:   c.Protocol() == "https",
			SameSite: fiber.CookieSameSiteStrictMode,
		})
		return c.JSON(loginResponse{
			Message:   "Login successful",
			Token:     raw,
			ExpiresAt: exp,
			UserType:  sess.UserType,
			Role:      sess.Role,
			User:      sess.User,
			Menu:      rbac.Menu(sess.Role),
		})
	}
}

// Logout ends the session. The local session is gone even when the backend call fails.
func Logout(auth service.AuthService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := currentSession(c)
		err := auth.Logout(c.UserContext(), sess)
		record(c, rec, "logout", "session", sess.ID, err)
		c.ClearCookie(TokenCookie)
		return writeOK(c, fiber.StatusOK, "Logged out", nil)
	}
}

func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := currentSession(c)
		return c.JSON(meResponse{
			User:      sess.User,
			UserType:  sess.UserType,
			Role:      sess.Role,
			RoleLabel: rbac.RoleLabel(sess.Role),
		})
	}
}

func Menu() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"items": rbac.Menu(currentSession(c).Role)})
	}
}

// Authenticate resolves the console token to a stored session. Downstream handlers find the
// session in locals and the backend token in the user context.
func Authenticate(tokens *token.JWT, store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Please log in")
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, "SESSION_EXPIRED", msgSessionExpired)
		}
		sess, err := store.Get(c.UserContext(), claims.Subject)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return writeError(c, fiber.StatusUnauthorized, "SESSION_EXPIRED", msgSessionExpired)
			}
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "session store unavailable")
		}

		c.Locals(middleware.SessionLocalKey, sess)
		ctx := session.WithSession(c.UserContext(), sess)
		c.SetUserContext(backend.WithToken(ctx, sess.Token))
		return c.Next()
	}
}

// RouteGuard applies the page guards of rbac to the /api tree: /api/coupons/7 is guarded
// like the /coupons page.
func RouteGuard(prefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := strings.TrimPrefix(c.Path(), prefix)
		if !rbac.CanAccess(currentSession(c).Role, path) {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "You do not have access to this page")
		}
		return c.Next()
	}
}

// RequireRoles lets through admins holding one of roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rbac.HasRole(currentSession(c).Role, roles...) {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "You do not have access to this action")
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		if v, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}
	return c.Cookies(TokenCookie)
}

// currentSession is the session set by Authenticate. Routes that call it sit behind Authenticate.
func currentSession(c *fiber.Ctx) *session.Session {
	if s, ok := c.Locals(middleware.SessionLocalKey).(*session.Session); ok {
		return s
	}
	return &session.Session{}
}

// ExpireSession is the backend client's unauthorized hook: the backend rejected the stored
// token, so the console session goes too.
func ExpireSession(store session.Store) func(ctx context.Context) {
	return func(ctx context.Context) {
		if s, ok := session.FromContext(ctx); ok {
			_ = store.Delete(context.WithoutCancel(ctx), s.ID)
		}
	}
}
