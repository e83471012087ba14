package backend

import (
	"context"
	"net/http"

	"jobadmin/internal/model"
)

type adminEnvelope struct {
	Admin model.Admin `json:"admin"`
}

func (c *Client) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var out struct {
		Admins model.Page[model.Admin] `json:"admins"`
	}
	if err := c.do(ctx, request{name: "admins.list", method: http.MethodGet, path: "/admin/admins"}, &out); err != nil {
		return nil, err
	}
	return out.Admins.Data, nil
}

func (c *Client) GetAdmin(ctx context.Context, id int64) (*model.Admin, error) {
	var out adminEnvelope
	if err := c.do(ctx, request{name: "admins.get", method: http.MethodGet, path: pathf("/admin/admins/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

func (c *Client) CreateAdmin(ctx context.Context, in model.AdminInput) (*model.Admin, error) {
	var out adminEnvelope
	if err := c.do(ctx, request{name: "admins.create", method: http.MethodPost, path: "/admin/admins", body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

func (c *Client) UpdateAdmin(ctx context.Context, id int64, in model.AdminInput) (*model.Admin, error) {
	var out adminEnvelope
	if err := c.do(ctx, request{name: "admins.update", method: http.MethodPut, path: pathf("/admin/admins/%s", id), body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.do(ctx, request{name: "admins.delete", method: http.MethodDelete, path: pathf("/admin/admins/%s", id)}, nil)
}
