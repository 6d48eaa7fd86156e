package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travelnest/internal/validate"
)

// Error payload contract: validation failures are {message, field},
// everything else is {message}.

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func validationFailed(c *fiber.Ctx, fe *validate.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": fe.Message,
		"field":   fe.Field,
	})
}
