package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Feedstream-Backend/src/services/analytics"
	"Feedstream-Backend/src/utils"
)

// GetAnalytics godoc
// @Summary      Aggregate response analytics for the department
// @Description  Rating distribution plus per-subject/staff/semester averages over the caller's scope.
// @Tags         analytics
// @Produce      json
// @Param        from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param        to query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param        subjectId query string false "Subject filter"
// @Param        staffId query string false "Staff filter"
// @Param        semester query string false "Semester filter"
// @Success      200  {object}  models.FormAnalytics
// @Failure      401  {object}  models.ErrorResponse
// @Router       /analytics [get]
func GetAnalytics(c *fiber.Ctx) error {
	orgID, deptID, err := tenantScope(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "invalid tenant scope")
	}

	from := parseDate(c.Query("from"), false)
	to := parseDate(c.Query("to"), true)

	filter := analytics.Filter{
		SubjectID: c.Query("subjectId"),
		StaffID:   c.Query("staffId"),
		Semester:  c.Query("semester"),
	}

	result, err := analytics.GetScopeAnalytics(c.Context(), orgID, deptID, from, to, filter)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// parseDate accepts RFC3339 or a bare date; a bare "to" date extends to
// the end of that day so the range is inclusive.
func parseDate(s string, endOfDay bool) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}
