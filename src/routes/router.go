package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	PublicRoutes(app)
	FormRoutes(app)
	ResponseRoutes(app)
	AnalyticsRoutes(app)
	MetaRoutes(app)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
