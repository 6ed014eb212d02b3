package routes

import (
	"Feedstream-Backend/src/controllers"
	"Feedstream-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func ResponseRoutes(router fiber.Router) {
	forms := router.Group("/forms", middleware.AuthJWT)

	forms.Get("/:formId/responses", controllers.GetResponsesByForm)
	forms.Get("/:formId/responses/export", controllers.ExportResponsesCSV)
}
