package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/moto-frota/internal/service/vehicle"
)

// Every API response carries the same envelope: {"success":true,"data":...}
// on the happy path, {"success":false,"message":...} otherwise.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// respondValidation maps each offending field to its violation messages.
func respondValidation(c *fiber.Ctx, errs vehicle.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
