package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/storekit/backend/pkg/apperr"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// FromError maps a typed failure onto its HTTP status and stable message.
// Untyped errors fall through as 500 with a generic message.
func FromError(c *fiber.Ctx, err error) error {
	return Error(c, statusOf(err), apperr.Message(err))
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Invalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
