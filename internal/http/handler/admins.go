package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/model"
	"jobadmin/internal/service"
)

func ListAdmins(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admins, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch admins")
		}
		return c.JSON(fiber.Map{"data": admins})
	}
}

func GetAdmin(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		a, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch admin")
		}
		return c.JSON(a)
	}
}

func CreateAdmin(svc service.AdminService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.AdminInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "create", resource: "admin", success: "Admin created successfully", failure: "Failed to create admin", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return svc.Create(c.UserContext(), in)
		})
	}
}

func UpdateAdmin(svc service.AdminService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.AdminInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "update", resource: "admin", id: idString(id), success: "Admin updated successfully", failure: "Failed to update admin"}
		return run(c, rec, m, func() (any, error) {
			return svc.Update(c.UserContext(), id, in)
		})
	}
}

func DeleteAdmin(svc service.AdminService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete", resource: "admin", id: idString(id), success: "Admin deleted successfully", failure: "Failed to delete admin"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), id)
		})
	}
}

// DiagnoseAdmins creates and removes a throwaway staff admin to show why admin creation fails.
func DiagnoseAdmins(svc service.AdminService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report := svc.Diagnose(c.UserContext())
		var err error
		if !report.Success {
			err = errors.New(report.Message)
		}
		record(c, rec, "diagnose", "admin", "", err)
		return c.JSON(report)
	}
}
