package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Feedstream-Backend/src/models"
	"Feedstream-Backend/src/services/forms"
	"Feedstream-Backend/src/utils"
)

// CreateForm godoc
// @Summary      Create a new feedback form
// @Description  Create a form for the caller's department and mint its access code
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateFormRequest true "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}

	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	form, err := forms.CreateForm(c.Context(), orgID, deptID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// GetForms godoc
// @Summary      List the department's forms
// @Tags         forms
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Title search"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /forms [get]
func GetForms(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}

	page, err := forms.GetForms(c.Context(), orgID, deptID, paginationFromQuery(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(page)
}

// GetFormByID godoc
// @Summary      Fetch one form
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.GetFormForDepartment(c.Context(), formID, orgID, deptID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Partial update; the access code never changes
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.UpdateFormRequest true "Fields to update"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req models.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	form, err := forms.UpdateForm(c.Context(), formID, orgID, deptID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// SetFormActive godoc
// @Summary      Activate or deactivate a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200
// @Router       /forms/{id}/active [patch]
func SetFormActive(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var body struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := forms.SetFormActive(c.Context(), formID, orgID, deptID, body.IsActive); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// DeleteForm godoc
// @Summary      Delete a form and its responses
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := forms.DeleteForm(c.Context(), formID, orgID, deptID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
