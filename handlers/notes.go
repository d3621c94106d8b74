package handlers

import (
	"errors"

	"digital-weather/app"
	"digital-weather/models"
	"digital-weather/services"

	"github.com/gofiber/fiber/v2"
)

// AddNote attaches a note to the device in the path
func AddNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid device id")
		}

		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Add(deviceID, req.Text)
		if errors.Is(err, services.ErrDeviceNotFound) {
			return notFound(c, "Device not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to add note", err)
		}

		return created(c, fiber.Map{"id": note.ID, "created_at": note.CreatedAt})
	}
}

// ListNotes returns a device's notes, newest first. An unknown device
// has no notes.
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid device id")
		}

		notes, err := a.Notes.List(deviceID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		updated, err := a.Notes.Update(noteID, req.Text)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"updated": updated})
	}
}

func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		deleted, err := a.Notes.Delete(noteID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"deleted": deleted})
	}
}
