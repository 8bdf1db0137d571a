package handler

import (
	"github.com/gofiber/fiber/v2"

	"identityapi/internal/dto"
	"identityapi/internal/service"
)

const appInvalidRequest = "APP-60001"

// ListApplications returns a page of applications. limit defaults to 10 and offset to 0.
func ListApplications(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 10)
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit", "")
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset", "")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// CreateApplication creates an application and its inbound protocols.
func CreateApplication(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ApplicationModel
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, appInvalidRequest)
		}
		res, err := svc.Create(c.UserContext(), &req)
		if err != nil {
			return err
		}
		c.Location(c.Path() + "/" + res.ID)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func GetApplication(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Get(c.UserContext(), c.Params("applicationId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func DeleteApplication(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("applicationId")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PutOIDC creates or replaces the OIDC inbound of an application.
func PutOIDC(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.OpenIDConnectConfiguration
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, appInvalidRequest)
		}
		res, err := svc.PutOIDC(c.UserContext(), c.Params("applicationId"), &req)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func GetOIDC(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetOIDC(c.UserContext(), c.Params("applicationId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func DeleteOIDC(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteOIDC(c.UserContext(), c.Params("applicationId")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func RegenerateSecret(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.RegenerateSecret(c.UserContext(), c.Params("applicationId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func RevokeClient(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Revoke(c.UserContext(), c.Params("applicationId")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

func PutWSTrust(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.WSTrustConfiguration
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, appInvalidRequest)
		}
		if err := svc.PutWSTrust(c.UserContext(), c.Params("applicationId"), &req); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

func GetWSTrust(svc service.Applications) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetWSTrust(c.UserContext(), c.Params("applicationId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}
