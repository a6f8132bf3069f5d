package handlers

import (
	"pocket-reminders/app"
	"pocket-reminders/models"

	"github.com/gofiber/fiber/v2"
)

// GetSubtasks returns the sub-reminders of a reminder
func GetSubtasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		subtasks, err := a.Subtasks.ListByParent(parentID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch subtasks", err)
		}
		return success(c, fiber.Map{"subtasks": subtasks})
	}
}

// CreateSubtask adds a sub-reminder under an existing reminder
func CreateSubtask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid reminder id")
		}

		var req models.CreateSubtaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		subtask, err := a.Subtasks.Create(parentID, req.Title)
		if err != nil {
			return serviceError(c, err)
		}
		return created(c, fiber.Map{"subtask": subtask})
	}
}

// UpdateSubtask rewrites a sub-reminder's title
func UpdateSubtask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid subtask id")
		}

		var req models.UpdateSubtaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Subtasks.Update(id, req.Title); err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"updated": true})
	}
}

// DeleteSubtask removes a single sub-reminder
func DeleteSubtask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid subtask id")
		}

		if err := a.Subtasks.Delete(id); err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"deleted": true})
	}
}
