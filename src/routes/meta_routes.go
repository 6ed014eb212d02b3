package routes

import (
	"Feedstream-Backend/src/controllers"
	"Feedstream-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func MetaRoutes(router fiber.Router) {
	router.Get("/meta/filters", middleware.AuthJWT, controllers.GetMetaFilters)
}
