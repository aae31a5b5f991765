package handlers

import (
	"strconv"

	"clubmanager-api/packages/core/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP response, exposing the
// machine-readable code next to the message.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"code":  apperrors.Code(err),
	})
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		respondError(c, apperrors.InvalidArgument("invalid "+name+" parameter"))
		return 0, false
	}
	return uint(value), true
}

// parsePagination reads page/pageSize query parameters with the usual defaults.
func parsePagination(c *gin.Context) (page int, pageSize int) {
	page = 1
	pageSize = 10

	if pageParam := c.Query("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			page = p
		}
	}

	if sizeParam := c.Query("pageSize"); sizeParam != "" {
		if ps, err := strconv.Atoi(sizeParam); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}

	return page, pageSize
}
