package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newConsoleApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	// Only super admins may open /api/admins; everyone else is stopped at the group.
	api := app.Group("/api", func(c *fiber.Ctx) error {
		if c.Get("X-Role") != "super_admin" && c.Path() == "/api/admins" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": fiber.Map{"code": "FORBIDDEN"}})
		}
		return c.Next()
	})
	api.Get("/admins", func(c *fiber.Ctx) error { return c.JSON([]string{}) })
	api.Put("/catalogs/:kind/:id", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"message": "Updated"}) })
	api.Put("/cv-requests/:id/status", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "backend unavailable")
	})
	api.Get("/me", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": fiber.Map{"code": "SESSION_EXPIRED"}})
	})
	return app, m, reg
}

func TestPrometheusMiddleware_CatalogRouteLabel(t *testing.T) {
	app, m, _ := newConsoleApp(t)

	for _, path := range []string{"/api/catalogs/skills/4", "/api/catalogs/locations/19"} {
		resp, err := app.Test(httptest.NewRequest("PUT", path, nil))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected status 200 for %s, got %d", path, resp.StatusCode)
		}
	}

	count := testutil.ToFloat64(m.requestCount.WithLabelValues("PUT", "/api/catalogs/:kind/:id", "200"))
	if count != 2 {
		t.Errorf("expected both catalog updates under one label, got %f", count)
	}
	if n := testutil.CollectAndCount(m.requestDuration); n != 1 {
		t.Errorf("expected one latency series, got %d", n)
	}
}

func TestPrometheusMiddleware_GuardRejection(t *testing.T) {
	app, m, _ := newConsoleApp(t)

	req := httptest.NewRequest("GET", "/api/admins", nil)
	req.Header.Set("X-Role", "staff")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.StatusCode)
	}
	// The handler never ran, so the request is counted under the guard's prefix.
	if count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/api", "403")); count != 1 {
		t.Errorf("expected one rejected request under /api, got %f", count)
	}

	req = httptest.NewRequest("GET", "/api/admins", nil)
	req.Header.Set("X-Role", "super_admin")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("request: %v", err)
	}
	if count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/api/admins", "200")); count != 1 {
		t.Errorf("expected one allowed request under /api/admins, got %f", count)
	}
}

func TestPrometheusMiddleware_ErrorStatuses(t *testing.T) {
	app, m, _ := newConsoleApp(t)

	if _, err := app.Test(httptest.NewRequest("PUT", "/api/cv-requests/3/status", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if count := testutil.ToFloat64(m.requestCount.WithLabelValues("PUT", "/api/cv-requests/:id/status", "502")); count != 1 {
		t.Errorf("expected the returned fiber error to be counted as 502, got %f", count)
	}

	if _, err := app.Test(httptest.NewRequest("GET", "/api/me", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/api/me", "401")); count != 1 {
		t.Errorf("expected the expired session to be counted as 401, got %f", count)
	}
}

func TestPrometheusMiddleware_SkipsScrapes(t *testing.T) {
	app, _, reg := newConsoleApp(t)

	if _, err := app.Test(httptest.NewRequest("GET", "/metrics", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "http_requests_total" && len(mf.GetMetric()) > 0 {
			t.Errorf("expected scrapes to be skipped, got %d series", len(mf.GetMetric()))
		}
	}
}

func TestNewPrometheusMiddleware_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusMiddleware(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := NewPrometheusMiddleware(reg); err == nil {
		t.Error("expected a second console middleware on the same registry to fail")
	}
}
