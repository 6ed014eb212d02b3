package controllers

import (
	"Feedstream-Backend/src/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// tenantScope reads the authenticated caller's org/department out of the
// JWT claims the middleware stashed in Locals.
func tenantScope(c *fiber.Ctx) (orgID, deptID primitive.ObjectID, err error) {
	org, _ := c.Locals("orgId").(string)
	dept, _ := c.Locals("departmentId").(string)

	orgID, err = primitive.ObjectIDFromHex(org)
	if err != nil {
		return orgID, deptID, err
	}
	deptID, err = primitive.ObjectIDFromHex(dept)
	return orgID, deptID, err
}

// paginationFromQuery reads paging params with the standard defaults.
func paginationFromQuery(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()
	params.Page = c.QueryInt("page", params.Page)
	params.Limit = c.QueryInt("limit", params.Limit)
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}
	return params
}
