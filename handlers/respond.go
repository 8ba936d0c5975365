package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"student-records/auth"
	"student-records/roster"
	"student-records/tokens"
	"student-records/validation"
)

const requestTimeout = 3 * time.Second

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

// respondError maps domain errors to their HTTP status and body.
func respondError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	case errors.Is(err, roster.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	case errors.Is(err, roster.ErrClassEmpty):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No students found in this class"})
	case errors.Is(err, roster.ErrDuplicateStudentID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student ID already exists"})
	case errors.Is(err, tokens.ErrInvalidToken):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Invalid or expired access token for this class."})
	default:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
