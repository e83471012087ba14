package backend

import (
	"context"
	"net/http"

	"jobadmin/internal/model"
)

// Login exchanges credentials for a bearer token. A 401 here never fires the unauthorized hook.
func (c *Client) Login(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	var out model.LoginResult
	if err := c.do(ctx, request{name: "auth.login", method: http.MethodPost, path: loginPath, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the token carried by ctx.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, request{name: "auth.logout", method: http.MethodPost, path: "/auth/logout"}, nil)
}

// Profile returns the admin owning the token.
func (c *Client) Profile(ctx context.Context) (*model.Admin, error) {
	var out struct {
		Admin model.Admin `json:"admin"`
	}
	if err := c.do(ctx, request{name: "admin.profile", method: http.MethodGet, path: "/admin/profile"}, &out); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

// DashboardStats returns the dashboard counters.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.do(ctx, request{name: "dashboard.stats", method: http.MethodGet, path: "/admin/dashboard/stats"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
