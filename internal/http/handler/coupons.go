package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/model"
	"jobadmin/internal/service"
)

type assignRequest struct {
	Identifiers []string `json:"identifiers"`
}

func ListCoupons(svc service.CouponService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coupons, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch coupons")
		}
		return c.JSON(fiber.Map{"data": coupons})
	}
}

func PendingCoupons(svc service.CouponService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coupons, err := svc.Pending(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch pending coupons")
		}
		return c.JSON(fiber.Map{"data": coupons})
	}
}

func GetCoupon(svc service.CouponService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		d, err := svc.Details(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch coupon details")
		}
		return c.JSON(d)
	}
}

// CreateCoupon submits a coupon for review on behalf of the signed-in admin.
func CreateCoupon(svc service.CouponService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f service.CouponForm
		if err := c.BodyParser(&f); err != nil {
			return invalidBody(c)
		}
		actor := currentSession(c).User
		m := mutation{action: "create", resource: "coupon", success: "Coupon created and sent for approval", failure: "Failed to create coupon", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return svc.Create(c.UserContext(), actor, f)
		})
	}
}

func DeleteCoupon(svc service.CouponService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete", resource: "coupon", id: idString(id), success: "Coupon deleted successfully", failure: "Failed to delete coupon"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), id)
		})
	}
}

// ReviewCoupon returns the approve or reject handler depending on status.
func ReviewCoupon(svc service.CouponService, rec audit.Recorder, status string) fiber.Handler {
	action, success := "approve", "Coupon approved successfully"
	if status == model.CouponRejected {
		action, success = "reject", "Coupon rejected"
	}
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		role := currentSession(c).Role
		m := mutation{action: action, resource: "coupon", id: idString(id), success: success, failure: "Failed to " + action + " coupon"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Review(c.UserContext(), role, id, status)
		})
	}
}

func AssignCoupon(svc service.CouponService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var req assignRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		res, err := svc.Assign(c.UserContext(), id, req.Identifiers)
		record(c, rec, "assign", "coupon", idString(id), err)
		if err != nil {
			return respondError(c, err, "Failed to assign coupon")
		}
		return writeOK(c, fiber.StatusOK, fmt.Sprintf("%d user(s) assigned successfully", len(res.Assigned)), res)
	}
}

func UnassignCoupon(svc service.CouponService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		assignmentID, ok := paramID(c, "assignmentID")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "unassign", resource: "coupon", id: idString(id), success: "User removed from coupon", failure: "Failed to remove user"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Unassign(c.UserContext(), id, assignmentID)
		})
	}
}
