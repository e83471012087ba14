package backend

import (
	"context"
	"net/http"

	"jobadmin/internal/model"
)

// CommissionResponse is the raw commission list. Older endpoints send total_earned instead
// of total_earnings and a bare array instead of a page.
type CommissionResponse struct {
	Commissions   model.Page[model.Commission] `json:"commissions"`
	TotalEarnings *model.Amount                `json:"total_earnings"`
	TotalEarned   *model.Amount                `json:"total_earned"`
	StaffList     []model.Admin                `json:"staff_list"`
}

func (c *Client) AllCommissions(ctx context.Context, f model.CommissionFilter) (*CommissionResponse, error) {
	return c.commissions(ctx, "commissions.all", "/admin/commissions/all", f)
}

// ManagerCommissions lists commissions of the caller's team.
func (c *Client) ManagerCommissions(ctx context.Context, f model.CommissionFilter) (*CommissionResponse, error) {
	return c.commissions(ctx, "commissions.manager", "/admin/commissions/manager", f)
}

func (c *Client) MyCommissions(ctx context.Context) (*CommissionResponse, error) {
	return c.commissions(ctx, "commissions.my", "/admin/commissions/my", model.CommissionFilter{})
}

func (c *Client) commissions(ctx context.Context, name, path string, f model.CommissionFilter) (*CommissionResponse, error) {
	var out CommissionResponse
	if err := c.do(ctx, request{name: name, method: http.MethodGet, path: path, query: commissionValues(f)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddManualCommission(ctx context.Context, in model.ManualCommission) error {
	return c.do(ctx, request{name: "commissions.manual", method: http.MethodPost, path: "/admin/commissions/manual", body: in}, nil)
}

func (c *Client) ListCVRequests(ctx context.Context, status string) ([]model.CVRequest, error) {
	var out struct {
		CVRequests model.Page[model.CVRequest] `json:"cv_requests"`
	}
	r := request{name: "cv_requests.list", method: http.MethodGet, path: "/admin/cv-requests", query: listValues(model.ListQuery{Status: status})}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out.CVRequests.Data, nil
}

func (c *Client) UpdateCVRequestStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, request{name: "cv_requests.status", method: http.MethodPut, path: pathf("/admin/cv-requests/%s/status", id), body: body}, nil)
}
