package controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Feedstream-Backend/src/services/export"
	"Feedstream-Backend/src/services/responses"
	"Feedstream-Backend/src/utils"
)

// GetResponsesByForm godoc
// @Summary      List a form's responses
// @Tags         responses
// @Produce      json
// @Param        formId path string true "Form ID"
// @Param        subjectId query string false "Subject filter"
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/responses [get]
func GetResponsesByForm(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	page, err := responses.GetResponsesByForm(c.Context(), formID, orgID, deptID, c.Query("subjectId"), paginationFromQuery(c))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(page)
}

// ExportResponsesCSV godoc
// @Summary      Download a form's responses as CSV
// @Description  Header is the union of identity fields plus every answer key seen across rows.
// @Tags         responses
// @Produce      text/csv
// @Param        formId path string true "Form ID"
// @Param        subjectId query string false "Subject filter"
// @Success      200
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/responses/export [get]
func ExportResponsesCSV(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	rows, err := responses.LoadAllForForm(c.Context(), formID, orgID, deptID, c.Query("subjectId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="responses-%s.csv"`, formID.Hex()))
	return c.Send(buf.Bytes())
}
