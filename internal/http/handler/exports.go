package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/export"
	"jobadmin/internal/rbac"
	"jobadmin/internal/storage"
)

type exportRequest struct {
	Kind   string `json:"kind"`
	Search string `json:"search"`
	Status string `json:"status"`
}

// paymentRoles match the visibility of the orders page.
var paymentRoles = []string{rbac.SuperAdmin, rbac.Manager}

func CreateExport(svc export.Service, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req exportRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		kind, ok := export.ParseKind(req.Kind)
		if !ok {
			return respondError(c, export.ErrUnknownKind, "Export failed")
		}
		sess := currentSession(c)
		if (kind == export.Orders || kind == export.Transactions) && !rbac.HasRole(sess.Role, paymentRoles...) {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "You do not have access to this export")
		}

		q := listQuery(c)
		if req.Search != "" {
			q.Search = req.Search
		}
		if req.Status != "" {
			q.Status = req.Status
		}
		e, err := svc.Create(c.UserContext(), export.Request{
			Kind:  kind,
			Query: q,
			Actor: sess.User,
			Role:  sess.Role,
		})
		id := ""
		if e != nil {
			id = e.ID
		}
		record(c, rec, "create", "export:"+string(kind), id, err)
		if err != nil {
			return respondError(c, err, "Export failed")
		}
		return writeOK(c, fiber.StatusCreated, "Export created successfully", e)
	}
}

func ListExports(svc export.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), c.Query("kind"), c.QueryInt("limit", 10), c.QueryInt("offset", 0))
		if err != nil {
			return respondError(c, err, "Failed to fetch exports")
		}
		return c.JSON(res)
	}
}

func GetExport(svc export.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err, "Failed to fetch export")
		}
		return c.JSON(e)
	}
}

// DownloadExport streams the CSV through the console for clients that cannot reach storage.
func DownloadExport(svc export.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, e, err := svc.Open(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err, "Failed to download export")
		}
		c.Attachment(e.Filename)
		c.Set(fiber.HeaderContentType, e.ContentType)
		return c.SendStream(rc, int(e.Size))
	}
}

func DeleteExport(svc export.Service, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		m := mutation{action: "delete", resource: "export", id: id, success: "Export deleted successfully", failure: "Failed to delete export"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), id)
		})
	}
}

// ExportsUnavailable answers every export route when object storage is not configured.
func ExportsUnavailable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return respondError(c, storage.ErrNotConfigured, "Exports are not available")
	}
}

// ListAudit returns the audit trail, newest first.
func ListAudit(rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := int64(c.QueryInt("actor_id", 0))
		res, err := rec.List(c.UserContext(), audit.Query{
			ActorID:  actorID,
			Resource: c.Query("resource"),
			Outcome:  c.Query("outcome"),
			Page:     c.QueryInt("page", 1),
			PerPage:  c.QueryInt("per_page", 0),
		})
		if err != nil {
			return respondError(c, err, "Failed to fetch audit log")
		}
		return c.JSON(res)
	}
}
