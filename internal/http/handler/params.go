package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// queryInt returns the integer query parameter key or def when it is absent.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// optionalQueryInt returns nil when key is not present in the query string at all.
func optionalQueryInt(c *fiber.Ctx, key string) (*int, error) {
	if !c.Context().QueryArgs().Has(key) {
		return nil, nil
	}
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	v := c.Query(key)
	return &v
}

// invalidBody rejects a request whose JSON body cannot be decoded.
func invalidBody(c *fiber.Ctx, code string) error {
	return writeError(c, fiber.StatusBadRequest, code, "Invalid Request", "malformed request body")
}
