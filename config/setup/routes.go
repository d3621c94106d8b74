package setup

import (
	"time"

	"digital-weather/app"
	"digital-weather/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))

	// Password checks are slow on purpose; keep guessing slower still
	auth := fiberApp.Group("/api/auth", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many authentication attempts",
			})
		},
	}))
	auth.Post("/register", handlers.Register(application))
	auth.Post("/login", handlers.Login(application))

	api := fiberApp.Group("/api")
	api.Post("/devices", handlers.AddDevice(application))
	api.Get("/devices", handlers.ListDevices(application))
	api.Get("/devices/heatmap", handlers.Heatmap(application))
	api.Post("/devices/:id/notes", handlers.AddNote(application))
	api.Get("/devices/:id/notes", handlers.ListNotes(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
}
