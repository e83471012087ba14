package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobadmin/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api/v1/", opts...)
	require.NoError(t, err)
	return c
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient("localhost:8000")
	assert.Error(t, err)

	_, err = NewClient("/api/v1")
	assert.Error(t, err)
}

func TestClient_SendsTokenAndQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/employees", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "ana", r.URL.Query().Get("search"))
		assert.False(t, r.URL.Query().Has("status"))
		_, _ = io.WriteString(w, `{"employees":{"data":[{"id":7,"name":"Ana"}],"total":21,"current_page":2}}`)
	})

	ctx := WithToken(context.Background(), "tok-1")
	page, err := c.ListEmployees(ctx, model.ListQuery{Page: 2, Search: "ana"})
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(7), page.Data[0].ID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"plans":null}`)
	})

	plans, err := c.ListPlans(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"identifier": "root@example.com", "password": "secret"}, body)
		_, _ = io.WriteString(w, `{"token":"abc","user_type":"admin","user":{"id":1,"name":"Root","role":"super_admin"}}`)
	})

	res, err := c.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Token)
	assert.Equal(t, "super_admin", res.User.Role)
}

func TestClient_UnauthorizedHook(t *testing.T) {
	fired := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
	}, WithUnauthorizedHandler(func(ctx context.Context) {
		assert.Equal(t, "stale", TokenFromContext(ctx))
		fired++
	}))

	ctx := WithToken(context.Background(), "stale")
	_, err := c.Profile(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 1, fired)

	_, err = c.Login(ctx, "a", "b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 1, fired, "login failures must not clear the session")
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     string
		sentinel error
	}{
		{
			name:   "field errors joined in field order",
			status: http.StatusUnprocessableEntity,
			body:   `{"message":"The given data was invalid.","errors":{"email":["Email taken"],"code":["Code taken","Code too long"]}}`,
			want:   "Code taken, Code too long, Email taken",
		},
		{
			name:   "single string field errors",
			status: http.StatusUnprocessableEntity,
			body:   `{"errors":{"plan_id":"Plan required"}}`,
			want:   "Plan required",
		},
		{
			name:     "message only",
			status:   http.StatusForbidden,
			body:     `{"message":"Only super admin"}`,
			want:     "Only super admin",
			sentinel: ErrForbidden,
		},
		{
			name:     "error key",
			status:   http.StatusNotFound,
			body:     `{"error":"Coupon not found"}`,
			want:     "Coupon not found",
			sentinel: ErrNotFound,
		},
		{
			name:   "unparseable body falls back",
			status: http.StatusInternalServerError,
			body:   `<html>oops</html>`,
			want:   "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.DeleteCoupon(context.Background(), 3)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, Message(err, "fallback"))
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}
			assert.False(t, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestMessage_NonAPIError(t *testing.T) {
	assert.Equal(t, "Failed to load", Message(errors.New("dial tcp: refused"), "Failed to load"))
}

func TestClient_ListCatalogKeys(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/catalogs/field-of-studies":
			_, _ = io.WriteString(w, `{"field_of_studies":[{"id":1,"name":"Physics"}]}`)
		case "/api/v1/catalogs/education-levels":
			_, _ = io.WriteString(w, `{}`)
		default:
			http.NotFound(w, r)
		}
	})

	items, err := c.ListCatalog(context.Background(), model.FieldsOfStudy)
	require.NoError(t, err)
	if diff := cmp.Diff([]model.CatalogItem{{ID: 1, Name: "Physics"}}, items); diff != "" {
		t.Errorf("ListCatalog() mismatch (-want +got):\n%s", diff)
	}

	items, err = c.ListCatalog(context.Background(), model.EducationLevels)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestClient_AssignCouponUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/coupons/9/assign", r.URL.Path)
		var body struct {
			Users []model.AssignUser `json:"users"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []model.AssignUser{{Identifier: "a@x.io", Type: "employee"}}, body.Users)
		_, _ = io.WriteString(w, `{"assigned":[{"id":1,"identifier":"a@x.io"}]}`)
	})

	res, err := c.AssignCouponUsers(context.Background(), 9, []model.AssignUser{{Identifier: "a@x.io", Type: "employee"}})
	require.NoError(t, err)
	assert.Len(t, res.Assigned, 1)
	assert.NotNil(t, res.Failed)
	assert.Empty(t, res.Failed)
}

func TestClient_CommissionShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/admin/commissions/all":
			assert.Equal(t, "4", r.URL.Query().Get("staff_id"))
			assert.Equal(t, "manual", r.URL.Query().Get("type"))
			_, _ = io.WriteString(w, `{"commissions":{"data":[{"id":1,"amount_earned":"10.00"}],"total":30},"total_earnings":"120.50","staff_list":[{"id":4,"name":"Sam"}]}`)
		case "/api/v1/admin/commissions/my":
			_, _ = io.WriteString(w, `{"commissions":[{"id":2,"amount_earned":5}],"total_earned":5}`)
		}
	})

	all, err := c.AllCommissions(context.Background(), model.CommissionFilter{StaffID: "4", Type: "manual"})
	require.NoError(t, err)
	assert.Equal(t, 30, all.Commissions.Total)
	require.NotNil(t, all.TotalEarnings)
	assert.Equal(t, model.Amount(120.5), *all.TotalEarnings)
	assert.Len(t, all.StaffList, 1)

	mine, err := c.MyCommissions(context.Background())
	require.NoError(t, err)
	assert.Len(t, mine.Commissions.Data, 1)
	assert.Nil(t, mine.TotalEarnings)
	require.NotNil(t, mine.TotalEarned)
	assert.Equal(t, model.Amount(5), *mine.TotalEarned)
}

func TestClient_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total_employees":3}`)
	}, WithMetrics(m))

	stats, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("dashboard.stats", "200")))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering twice must fail")
}

func TestPathf_Escapes(t *testing.T) {
	assert.Equal(t, "/catalogs/a%2Fb/12", pathf("/catalogs/%s/%s", "a/b", int64(12)))
}
