package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"feed_workspace/dto"
	"feed_workspace/services"
)

// respondErr maps service error kinds to transport codes while keeping
// the {status:"error", error} envelope the clients expect.
func respondErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidVerifyStatus):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUserExists):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Status: "error", Error: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Error: msg})
}
