package handlers

import (
	"errors"

	"digital-weather/app"
	"digital-weather/models"
	"digital-weather/services"

	"github.com/gofiber/fiber/v2"
)

// Register creates a user account
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		message, err := a.Auth.Register(req.Username, req.Password)
		if errors.Is(err, services.ErrDuplicateUsername) {
			return conflict(c, "Username already exists")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to register user", err)
		}

		return created(c, fiber.Map{"message": message})
	}
}

// Login checks a username/password pair. Unknown users and wrong
// passwords get the same response.
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		ok, err := a.Auth.Login(req.Username, req.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid username or password",
			})
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to log in", err)
		}

		return success(c, fiber.Map{"success": ok})
	}
}
