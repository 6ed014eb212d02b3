package routes

import (
	"Feedstream-Backend/src/controllers"
	"Feedstream-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// FormRoutes กำหนด route สำหรับ form management
func FormRoutes(router fiber.Router) {
	forms := router.Group("/forms", middleware.AuthJWT)

	forms.Post("/", controllers.CreateForm)
	forms.Get("/", controllers.GetForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Put("/:id", controllers.UpdateForm)
	forms.Patch("/:id", controllers.UpdateForm)
	forms.Patch("/:id/active", controllers.SetFormActive)
	forms.Delete("/:id", controllers.DeleteForm)
}
