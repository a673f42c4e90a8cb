package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts pagination parameters from the request.
// Malformed or out-of-range values fall back to page 1 / the default page
// size rather than erroring.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	// limit is the canonical name; pageSize is accepted as an alias.
	sizeParam := c.QueryParam("limit")
	if sizeParam == "" {
		sizeParam = c.QueryParam("pageSize")
	}
	pageSize, _ := strconv.Atoi(sizeParam)

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}
