package handlers

import (
	"pocket-reminders/app"
	"pocket-reminders/models"

	"github.com/gofiber/fiber/v2"
)

// GetLists returns all lists
func GetLists(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lists, err := a.Lists.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch lists", err)
		}
		return success(c, fiber.Map{"lists": lists})
	}
}

// GetList returns a single list by id
func GetList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid list id")
		}

		list, err := a.Lists.Get(id)
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"list": list})
	}
}

// CreateList creates a new list
func CreateList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateListRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		list, err := a.Lists.Create(req.Name, req.Color, req.Icon)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create list", err)
		}
		return created(c, fiber.Map{"list": list})
	}
}

// UpdateList rewrites a list's name and optionally its color and icon
func UpdateList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid list id")
		}

		var req models.UpdateListRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		list, err := a.Lists.Update(id, &req)
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"list": list})
	}
}

// DeleteList removes a list; its reminders are left in place
func DeleteList(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid list id")
		}

		if err := a.Lists.Delete(id); err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"deleted": true})
	}
}

// GetListReminders returns the reminders of a list, optionally only the
// incomplete ones (?incomplete=true)
func GetListReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid list id")
		}

		incompleteOnly := c.QueryBool("incomplete")
		reminders, err := a.Reminders.ListByList(id, incompleteOnly)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch reminders", err)
		}
		return success(c, fiber.Map{"reminders": reminders})
	}
}

// GetListReminderCount returns the incomplete badge count for a list tile
func GetListReminderCount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "invalid list id")
		}

		count, err := a.Reminders.CountIncompleteByList(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to count reminders", err)
		}
		return success(c, fiber.Map{"count": count})
	}
}
