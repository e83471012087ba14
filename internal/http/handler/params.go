package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/http/middleware"
	"jobadmin/internal/model"
)

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
}

// listQuery reads page, per_page, search and status. Bad numbers fall back to defaults.
func listQuery(c *fiber.Ctx) model.ListQuery {
	return model.ListQuery{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 0),
		Search:  strings.TrimSpace(c.Query("search")),
		Status:  c.Query("status"),
	}
}

// record writes the audit entry for a mutation made by the current admin.
func record(c *fiber.Ctx, rec audit.Recorder, action, resource, resourceID string, err error) {
	sess := currentSession(c)
	rec.Record(c.UserContext(), audit.Event{
		Actor:      sess.User,
		Role:       sess.Role,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		RequestID:  middleware.RequestIDFrom(c),
		Err:        err,
	})
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// mutation describes an audited change and the toast texts shown for it.
type mutation struct {
	action   string
	resource string
	id       string
	success  string
	failure  string
	status   int
}

// run executes fn, records the outcome and writes the response.
func run(c *fiber.Ctx, rec audit.Recorder, m mutation, fn func() (any, error)) error {
	data, err := fn()
	record(c, rec, m.action, m.resource, m.id, err)
	if err != nil {
		return respondError(c, err, m.failure)
	}
	status := m.status
	if status == 0 {
		status = fiber.StatusOK
	}
	return writeOK(c, status, m.success, data)
}
