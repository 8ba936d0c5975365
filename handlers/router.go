package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"student-records/middleware"
	"student-records/models"
	"student-records/validation"
)

const (
	AppName    = "Student Record Database API"
	APIVersion = "1.0.0"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (models.SessionUser, error)
}

type RosterService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id int) (models.Student, error)
	Add(ctx context.Context, req models.CreateStudentRequest) (models.Student, error)
	ListByClass(ctx context.Context, className string) ([]models.Student, error)
	ClassExists(ctx context.Context, className string) (bool, error)
	Classes(ctx context.Context) ([]models.ClassSummary, error)
}

type TokenRegistry interface {
	Issue(className string) string
	Validate(className, token string) error
}

type Deps struct {
	Auth      Authenticator
	Roster    RosterService
	Tokens    TokenRegistry
	Sessions  *session.Store
	Validator *validation.Validator

	// CookieSecret enables cookie encryption when set.
	CookieSecret string
	// PublicBaseURL overrides the scheme and host used for generated
	// class URLs.
	PublicBaseURL string
	// AccessLog enables per-request access logging.
	AccessLog bool
}

// NewApp builds the Fiber application with every route registered.
func NewApp(deps Deps) *fiber.App {
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	if deps.Sessions == nil {
		deps.Sessions = middleware.NewSessionStore(middleware.SessionConfig{TTL: 24 * time.Hour})
	}

	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(middleware.SetupCORS())
	if deps.CookieSecret != "" {
		app.Use(middleware.EncryptCookies(deps.CookieSecret))
	}

	authHandler := NewAuthHandler(deps.Auth, deps.Sessions, deps.Validator)
	studentHandler := NewStudentHandler(deps.Roster, deps.Tokens, deps.PublicBaseURL)
	requireAdmin := middleware.RequireAdmin(deps.Sessions)

	app.Get("/", Root)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	students := api.Group("/students")
	students.Post("/class/:className/generate-url", requireAdmin, studentHandler.GenerateClassURL)
	students.Get("/class/:className/:uniqueId", middleware.RequireClassToken(deps.Tokens), studentHandler.GetByClass)
	students.Get("/", requireAdmin, studentHandler.GetAll)
	students.Get("/:id", requireAdmin, studentHandler.Get)
	students.Post("/", requireAdmin, studentHandler.Create)

	api.Get("/classes", requireAdmin, studentHandler.GetClasses)

	return app
}

// errorHandler renders framework errors and anything a handler returned
// unhandled as a JSON error body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		slog.Error("unhandled request error", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
