package handlers

import (
	"pocket-reminders/app"
	"pocket-reminders/models"

	"github.com/gofiber/fiber/v2"
)

// GetView serves the curated views: today, scheduled, all, flagged,
// completed.
func GetView(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reminders []models.Reminder
		var err error

		switch c.Params("name") {
		case "today":
			reminders, err = a.Views.Today()
		case "scheduled":
			reminders, err = a.Views.Scheduled()
		case "all":
			reminders, err = a.Views.All()
		case "flagged":
			reminders, err = a.Views.Flagged()
		case "completed":
			reminders, err = a.Views.Completed()
		default:
			return notFound(c, "unknown view")
		}

		if err != nil {
			return serverErrorWithDetails(c, "Failed to compile view", err)
		}
		return success(c, fiber.Map{"reminders": reminders})
	}
}

// GetViewCounts serves the badge counts for the tile screen
func GetViewCounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := a.Views.Counts()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to compile counts", err)
		}
		return success(c, fiber.Map{"counts": counts})
	}
}
