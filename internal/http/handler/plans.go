package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/audit"
	"jobadmin/internal/model"
	"jobadmin/internal/service"
)

func ListPlans(svc service.PlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		plans, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch plans")
		}
		return c.JSON(fiber.Map{"data": plans})
	}
}

func CreatePlan(svc service.PlanService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PlanInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "create", resource: "plan", success: "Plan created successfully", failure: "Failed to create plan", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return svc.Create(c.UserContext(), in)
		})
	}
}

func UpdatePlan(svc service.PlanService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.PlanInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "update", resource: "plan", id: idString(id), success: "Plan updated successfully", failure: "Failed to update plan"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Update(c.UserContext(), id, in)
		})
	}
}

func DeletePlan(svc service.PlanService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete", resource: "plan", id: idString(id), success: "Plan deleted successfully", failure: "Failed to delete plan"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), id)
		})
	}
}

func AddPlanFeature(svc service.PlanService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.FeatureInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "add_feature", resource: "plan", id: idString(id), success: "Feature added successfully", failure: "Failed to add feature", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.AddFeature(c.UserContext(), id, in)
		})
	}
}

func DeletePlanFeature(svc service.PlanService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "featureID")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete_feature", resource: "plan", id: idString(id), success: "Feature deleted successfully", failure: "Failed to delete feature"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.DeleteFeature(c.UserContext(), id)
		})
	}
}

func catalogKind(c *fiber.Ctx) (model.CatalogKind, bool) {
	return model.ParseCatalogKind(c.Params("kind"))
}

func unknownCatalog(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "unknown catalog")
}

func ListCatalog(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, ok := catalogKind(c)
		if !ok {
			return unknownCatalog(c)
		}
		items, err := svc.List(c.UserContext(), kind)
		if err != nil {
			return respondError(c, err, "Failed to fetch catalog")
		}
		return c.JSON(fiber.Map{"kind": kind, "editable": kind.Editable(), "data": items})
	}
}

func CreateCatalogItem(svc service.CatalogService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, ok := catalogKind(c)
		if !ok {
			return unknownCatalog(c)
		}
		var in model.CatalogInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "create", resource: "catalog:" + string(kind), success: "Item added successfully", failure: "Failed to add item", status: fiber.StatusCreated}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Create(c.UserContext(), kind, in)
		})
	}
}

func UpdateCatalogItem(svc service.CatalogService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, ok := catalogKind(c)
		if !ok {
			return unknownCatalog(c)
		}
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.CatalogInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		m := mutation{action: "update", resource: "catalog:" + string(kind), id: idString(id), success: "Item updated successfully", failure: "Failed to update item"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Update(c.UserContext(), kind, id, in)
		})
	}
}

func DeleteCatalogItem(svc service.CatalogService, rec audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, ok := catalogKind(c)
		if !ok {
			return unknownCatalog(c)
		}
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m := mutation{action: "delete", resource: "catalog:" + string(kind), id: idString(id), success: "Item deleted successfully", failure: "Failed to delete item"}
		return run(c, rec, m, func() (any, error) {
			return nil, svc.Delete(c.UserContext(), kind, id)
		})
	}
}
