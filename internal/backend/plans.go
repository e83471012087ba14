package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"jobadmin/internal/model"
)

func (c *Client) ListPlans(ctx context.Context) ([]model.Plan, error) {
	var out struct {
		Plans []model.Plan `json:"plans"`
	}
	if err := c.do(ctx, request{name: "plans.list", method: http.MethodGet, path: "/plans"}, &out); err != nil {
		return nil, err
	}
	if out.Plans == nil {
		out.Plans = []model.Plan{}
	}
	return out.Plans, nil
}

func (c *Client) CreatePlan(ctx context.Context, in model.PlanInput) (*model.Plan, error) {
	var out struct {
		Plan model.Plan `json:"plan"`
	}
	if err := c.do(ctx, request{name: "plans.create", method: http.MethodPost, path: "/plans", body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Plan, nil
}

func (c *Client) UpdatePlan(ctx context.Context, id int64, in model.PlanInput) error {
	return c.do(ctx, request{name: "plans.update", method: http.MethodPut, path: pathf("/plans/%s", id), body: in}, nil)
}

func (c *Client) DeletePlan(ctx context.Context, id int64) error {
	return c.do(ctx, request{name: "plans.delete", method: http.MethodDelete, path: pathf("/plans/%s", id)}, nil)
}

func (c *Client) AddPlanFeature(ctx context.Context, planID int64, in model.FeatureInput) error {
	return c.do(ctx, request{name: "plans.add_feature", method: http.MethodPost, path: pathf("/plans/%s/features", planID), body: in}, nil)
}

func (c *Client) DeletePlanFeature(ctx context.Context, featureID int64) error {
	return c.do(ctx, request{name: "plans.delete_feature", method: http.MethodDelete, path: pathf("/plans/features/%s", featureID)}, nil)
}

// ListCatalog returns the entries of one catalog. The backend wraps them in a field named
// after the catalog ({"field_of_studies": [...]}).
func (c *Client) ListCatalog(ctx context.Context, kind model.CatalogKind) ([]model.CatalogItem, error) {
	var out map[string]json.RawMessage
	r := request{name: "catalogs.list", method: http.MethodGet, path: pathf("/catalogs/%s", string(kind))}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	items := []model.CatalogItem{}
	raw, ok := out[kind.Key()]
	if !ok || string(raw) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("catalogs.list: decode %s: %w", kind, err)
	}
	return items, nil
}

func (c *Client) CreateCatalogItem(ctx context.Context, kind model.CatalogKind, in model.CatalogInput) error {
	return c.do(ctx, request{name: "catalogs.create", method: http.MethodPost, path: pathf("/catalogs/%s", string(kind)), body: in}, nil)
}

func (c *Client) UpdateCatalogItem(ctx context.Context, kind model.CatalogKind, id int64, in model.CatalogInput) error {
	return c.do(ctx, request{name: "catalogs.update", method: http.MethodPut, path: pathf("/catalogs/%s/%s", string(kind), id), body: in}, nil)
}

func (c *Client) DeleteCatalogItem(ctx context.Context, kind model.CatalogKind, id int64) error {
	return c.do(ctx, request{name: "catalogs.delete", method: http.MethodDelete, path: pathf("/catalogs/%s/%s", string(kind), id)}, nil)
}
