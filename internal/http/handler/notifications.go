package handler

import (
	"github.com/gofiber/fiber/v2"

	"identityapi/internal/dto"
	"identityapi/internal/service"
)

const senderInvalidRequest = "NSM-60001"

func ListSMSSenders(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ListSMSSenders(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func AddSMSSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SMSSenderAdd
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, senderInvalidRequest)
		}
		res, err := svc.AddSMSSender(c.UserContext(), &req)
		if err != nil {
			return err
		}
		c.Location(c.Path() + "/" + res.Name)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func GetSMSSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetSMSSender(c.UserContext(), c.Params("senderName"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func UpdateSMSSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SMSSenderUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, senderInvalidRequest)
		}
		res, err := svc.UpdateSMSSender(c.UserContext(), c.Params("senderName"), &req)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func DeleteSMSSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteSMSSender(c.UserContext(), c.Params("senderName")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ListEmailSenders(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ListEmailSenders(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func AddEmailSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.EmailSenderAdd
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, senderInvalidRequest)
		}
		res, err := svc.AddEmailSender(c.UserContext(), &req)
		if err != nil {
			return err
		}
		c.Location(c.Path() + "/" + res.Name)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func GetEmailSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetEmailSender(c.UserContext(), c.Params("senderName"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func UpdateEmailSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.EmailSenderUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, senderInvalidRequest)
		}
		res, err := svc.UpdateEmailSender(c.UserContext(), c.Params("senderName"), &req)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func DeleteEmailSender(svc service.NotificationSenders) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteEmailSender(c.UserContext(), c.Params("senderName")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
