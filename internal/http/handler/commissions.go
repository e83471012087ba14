package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/model"
	"jobadmin/internal/service"
)

// cvStatusRequest carries the status the client last saw; when Current is empty the service
// looks it up before refusing an unchanged status.
type cvStatusRequest struct {
	Current string `json:"current"`
	Status  string `json:"status"`
}

func commissionFilter(c *fiber.Ctx) model.CommissionFilter {
	return model.CommissionFilter{
		StaffID:   c.Query("staff_id"),
		Type:      c.Query("type"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Page:      c.QueryInt("page", 1),
		PerPage:   c.QueryInt("per_page", 0),
	}
}

// ListCommissions picks the list by role; ?mine=true forces the personal view.
func ListCommissions(svc service.CommissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := currentSession(c)
		mine := c.QueryBool("mine", false)
		list, err := svc.List(c.UserContext(), sess.Role, mine, commissionFilter(c))
		if err != nil {
			return respondError(c, err, "Failed to fetch commissions")
		}
		return c.JSON(fiber.Map{
			"scope":          service.CommissionScope(sess.Role, mine),
			"items":          list.Items,
			"total":          list.Total,
			"total_earnings": list.TotalEarnings,
			"staff_list":     list.StaffList,
		})
	}
}

func AddManualCommission(svc service.CommissionService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ManualCommission
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "create", resource: "commission", id: idString(in.StaffID), success: "Commission added successfully", failure: "Failed to add commission", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.AddManual(c.UserContext(), in)
		})
	}
}

func ListCVRequests(svc service.CVRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), c.Query("status"))
		if err != nil {
			return respondError(c, err, "Failed to fetch CV requests")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

func UpdateCVRequestStatus(svc service.CVRequestService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var req cvStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "update_status", resource: "cv_request", id: idString(id), success: "Status updated successfully", failure: "Failed to update status"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.UpdateStatus(c.UserContext(), id, req.Current, req.Status)
		})
	}
}
