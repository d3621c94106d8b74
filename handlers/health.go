package handlers

import (
	"digital-weather/app"

	"github.com/gofiber/fiber/v2"
)

// Health reports ok when the store answers a query
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		devices, err := a.Repo.CountDevices()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok", "devices": devices})
	}
}
