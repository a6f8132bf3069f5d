package middleware

import (
	"pocket-reminders/database"

	"github.com/gofiber/fiber/v2"
)

// SchemaReady fences repository-backed routes behind the schema readiness
// gate. Until the gate settles ready, every request answers 503 with the
// gate state; after a schema failure that never changes for the process.
func SchemaReady(gate *database.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if gate.Ready() {
			return c.Next()
		}

		body := fiber.Map{
			"error": "storage is not ready",
			"state": gate.State().String(),
		}
		if err := gate.Err(); err != nil {
			body["detail"] = err.Error()
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
}
