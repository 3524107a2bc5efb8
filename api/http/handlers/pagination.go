package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/storekit/backend/pkg/apperr"
)

var errBadQuery = apperr.New(apperr.Invalid, "page and limit must be integers")

// parsePageLimit reads page/limit query parameters with the catalog defaults.
// Range checks happen in the catalog; this only rejects non-numeric input.
func parsePageLimit(c *fiber.Ctx) (page, limit int, err error) {
	page, limit = 1, 10
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, 0, errBadQuery
		}
		page = n
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, 0, errBadQuery
		}
		limit = n
	}
	return page, limit, nil
}
