package routes

import (
	"Feedstream-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// PublicRoutes are the anonymous endpoints: the access code in the path
// is the only credential.
func PublicRoutes(router fiber.Router) {
	public := router.Group("/public")

	public.Get("/forms/:code", controllers.GetPublicForm)
	public.Post("/forms/:code/responses", controllers.SubmitResponse)
}
