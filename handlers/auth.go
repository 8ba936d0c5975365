package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"student-records/middleware"
	"student-records/models"
	"student-records/validation"
)

type AuthHandler struct {
	auth      Authenticator
	sessions  *session.Store
	validator *validation.Validator
}

func NewAuthHandler(a Authenticator, sessions *session.Store, v *validation.Validator) *AuthHandler {
	return &AuthHandler{auth: a, sessions: sessions, validator: v}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := h.validator.Struct(req); err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "username", req.Username, "ip", c.IP())
		return respondError(c, err)
	}

	if err := middleware.StartSession(c, h.sessions, user); err != nil {
		slog.Error("failed to start session", "username", user.Username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	slog.Info("admin logged in", "username", user.Username)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user": fiber.Map{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.EndSession(c, h.sessions); err != nil {
		slog.Error("failed to destroy session", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to logout"})
	}
	return c.JSON(fiber.Map{"message": "Logout successful"})
}
