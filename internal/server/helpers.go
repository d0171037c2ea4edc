package server

import (
	"github.com/gofiber/fiber/v2"

	"quad/internal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination holds parsed page/page_size query parameters. Pages are
// 1-based.
type Pagination struct {
	Page     int
	PageSize int
}

// parsePagination extracts page and page_size query parameters, clamping
// out-of-range values instead of erroring.
func parsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// currentUserID returns the session profile id, or "" for anonymous
// requests.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

// respondError writes the error with the status its taxonomy maps to.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.HTTPStatus(err), err)
}
