package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/service"
)

func ListOrders(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.Orders(c.UserContext(), listQuery(c))
		if err != nil {
			return respondError(c, err, "Failed to fetch orders")
		}
		return c.JSON(page)
	}
}

func GetOrder(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		o, err := svc.Order(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch order details")
		}
		return c.JSON(o)
	}
}

func ListTransactions(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.Transactions(c.UserContext(), listQuery(c))
		if err != nil {
			return respondError(c, err, "Failed to fetch transactions")
		}
		return c.JSON(page)
	}
}

func GetTransaction(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		t, err := svc.Transaction(c.UserContext(), id)
		if err != nil {
			return respondError(c, err, "Failed to fetch transaction details")
		}
		return c.JSON(t)
	}
}

func PaymentStats(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Stats(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load payment statistics")
		}
		return c.JSON(s)
	}
}

// Dashboard returns the landing-page counters.
func Dashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Stats(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load dashboard")
		}
		return c.JSON(s)
	}
}
