package handlers

import (
	"errors"

	"digital-weather/app"
	"digital-weather/models"
	"digital-weather/services"

	"github.com/gofiber/fiber/v2"
)

// AddDevice stores a device at the posted coordinates
func AddDevice(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateDeviceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		id, err := a.Devices.Add(*req.Lat, *req.Lng)
		if errors.Is(err, services.ErrInvalidCoordinates) {
			return badRequest(c, "Coordinates out of range")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to add device", err)
		}

		return created(c, fiber.Map{"id": id})
	}
}

// ListDevices returns all devices as a GeoJSON FeatureCollection
func ListDevices(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := a.Devices.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list devices", err)
		}
		return c.JSON(doc)
	}
}

func Heatmap(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		heatmap, err := a.Devices.Heatmap()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to build heatmap", err)
		}
		return c.JSON(heatmap)
	}
}
