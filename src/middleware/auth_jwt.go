package middleware

import (
	"strings"

	"Feedstream-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT verifies the bearer token and exposes the caller's tenant scope
// via Locals. Department endpoints compare that scope against the form.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)
	c.Locals("orgId", claims.OrganizationID)
	c.Locals("departmentId", claims.DepartmentID)

	return c.Next()
}
