package handler

import (
	"github.com/gofiber/fiber/v2"

	"identityapi/internal/dto"
	"identityapi/internal/service"
)

const governanceInvalidRequest = "BAD_REQUEST"

// ListConnectorCategories lists governance categories. Any of limit, offset,
// filter or sort present in the query is passed through so the service can
// reject it.
func ListConnectorCategories(svc service.Governance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := optionalQueryInt(c, "limit")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit", "")
		}
		offset, err := optionalQueryInt(c, "offset")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset", "")
		}

		res, err := svc.GetConnectorCategories(c.UserContext(), limit, offset, optionalQuery(c, "filter"), optionalQuery(c, "sort"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func GetCategory(svc service.Governance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetCategory(c.UserContext(), c.Params("categoryId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func ListConnectors(svc service.Governance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetConnectorsByCategory(c.UserContext(), c.Params("categoryId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func GetConnector(svc service.Governance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetConnector(c.UserContext(), c.Params("categoryId"), c.Params("connectorId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func PatchConnector(svc service.Governance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ConnectorsPatchReq
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, governanceInvalidRequest)
		}
		if err := svc.UpdateConnectorProperties(c.UserContext(), c.Params("categoryId"), c.Params("connectorId"), &req); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetPreferences resolves the requested connector properties for the tenant.
func GetPreferences(svc service.Governance) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req []dto.PreferenceSearchAttribute
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, governanceInvalidRequest)
		}
		res, err := svc.GetConfigPreference(c.UserContext(), req)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}
