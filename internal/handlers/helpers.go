package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/middleware"
)

// staffScope returns the tenant and staff ids set by AuthMiddleware.
func staffScope(c *gin.Context) (tenantID, staffID uint) {
	return c.GetUint(middleware.ContextTenantID), c.GetUint(middleware.ContextStaffID)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.BadRequest(c, "invalid_query", "Invalid query parameters.")
		return false
	}
	return true
}
