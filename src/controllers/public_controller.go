package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Feedstream-Backend/src/models"
	"Feedstream-Backend/src/services/forms"
	"Feedstream-Backend/src/services/responses"
	"Feedstream-Backend/src/utils"
)

// GetPublicForm godoc
// @Summary      Fetch a form by access code
// @Description  Public: the access code is the only credential. Inactive and unknown codes both 404.
// @Tags         public
// @Produce      json
// @Param        code path string true "Access code"
// @Success      200  {object}  models.PublicForm
// @Failure      404  {object}  models.ErrorResponse
// @Router       /public/forms/{code} [get]
func GetPublicForm(c *fiber.Ctx) error {
	form, err := forms.GetPublicForm(c.Context(), c.Params("code"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// SubmitResponse godoc
// @Summary      Submit a response to a form
// @Description  Public, anonymous. One response per non-empty email per form.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        code path string true "Access code"
// @Param        body body models.SubmitRequest true "Respondent identity and answers"
// @Success      201
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /public/forms/{code}/responses [post]
func SubmitResponse(c *fiber.Ctx) error {
	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	response, err := responses.Submit(c.Context(), c.Params("code"), &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":         true,
		"responseId": response.ID.Hex(),
	})
}
