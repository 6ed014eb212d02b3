package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Feedstream-Backend/src/services/meta"
	"Feedstream-Backend/src/utils"
)

// GetMetaFilters godoc
// @Summary      Resolve filter candidates
// @Description  Given any subset of {semester, subjectId, staffId}, returns the valid candidate sets for the rest.
// @Tags         meta
// @Produce      json
// @Param        semester query string false "Semester"
// @Param        subjectId query string false "Subject ID"
// @Param        staffId query string false "Staff ID"
// @Success      200  {object}  models.MetaFilters
// @Failure      401  {object}  models.ErrorResponse
// @Router       /meta/filters [get]
func GetMetaFilters(c *fiber.Ctx) error {
	_, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}

	filters, err := meta.ResolveFilters(c.Context(), deptID, c.Query("semester"), c.Query("subjectId"), c.Query("staffId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(filters)
}
