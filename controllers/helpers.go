package controllers

import (
	"errors"
	"strconv"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/pkg/resp"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/services"
	"github.com/gin-gonic/gin"
)

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps the service error taxonomy onto HTTP statuses so
// callers can tell "not found" from "not allowed" from "already settled".
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "access denied to this country's data")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "order is no longer pending")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
