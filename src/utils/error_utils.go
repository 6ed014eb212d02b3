package utils

import (
	"errors"

	"Feedstream-Backend/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Sentinel errors the services return; controllers map them to statuses.
// Conflict and Unauthorized carry their caller-facing wording on purpose:
// the duplicate-submission message must say what went wrong, and the
// unauthorized one must not reveal whether the form exists elsewhere.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("email already used")
	ErrUnauthorized = errors.New("not authorized for this form")
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps a service error onto the right HTTP status.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict):
		return HandleError(c, fiber.StatusConflict, ErrConflict.Error())
	case errors.Is(err, ErrUnauthorized):
		return HandleError(c, fiber.StatusForbidden, ErrUnauthorized.Error())
	default:
		return HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
