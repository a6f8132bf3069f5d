package handlers

import (
	"pocket-reminders/app"
	"pocket-reminders/models"

	"github.com/gofiber/fiber/v2"
)

// GetReminders returns all reminders
func GetReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reminders, err := a.Reminders.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch reminders", err)
		}
		return success(c, fiber.Map{"reminders": reminders})
	}
}

// GetReminder returns a single reminder by id
func GetReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		reminder, err := a.Reminders.Get(id)
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"reminder": reminder})
	}
}

// CreateReminder creates a reminder, atomically with any initial subtasks
func CreateReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateReminderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		reminder, err := a.Reminders.Create(&req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create reminder", err)
		}
		return created(c, fiber.Map{"reminder": reminder})
	}
}

// UpdateReminder rewrites every field of a reminder
func UpdateReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		var req models.UpdateReminderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		reminder, err := a.Reminders.Update(id, &req)
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"reminder": reminder})
	}
}

// DeleteReminder removes a reminder; its sub-reminders are left orphaned
func DeleteReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		if err := a.Reminders.Delete(id); err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"deleted": true})
	}
}

// CompleteReminder marks a reminder done. There is no inverse route.
func CompleteReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		if err := a.Reminders.MarkDone(id); err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"completed": true})
	}
}

// FlagReminder flags a reminder. There is no inverse route.
func FlagReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		if err := a.Reminders.MarkFlagged(id); err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"flagged": true})
	}
}
