package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"identityapi/internal/apierror"
)

// statusOf returns the status the error handler will write for err, or the
// response status when the chain succeeded. The global ErrorHandler runs after
// middleware returns, so the response code alone is not final yet.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	if apiErr, ok := apierror.From(err); ok {
		return apiErr.Status
	}
	return fiber.StatusInternalServerError
}
