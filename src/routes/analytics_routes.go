package routes

import (
	"Feedstream-Backend/src/controllers"
	"Feedstream-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func AnalyticsRoutes(router fiber.Router) {
	router.Get("/analytics", middleware.AuthJWT, controllers.GetAnalytics)
}
