package middleware

import (
	"github.com/gofiber/fiber/v2"

	"passenger/config"
)

// Recovery turns a handler panic into a plain 500 instead of tearing down
// the connection.
func Recovery() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				config.GetLogrusInstance().Errorf("panic recovered: %v", r)
				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				})
			}
		}()
		return c.Next()
	}
}
