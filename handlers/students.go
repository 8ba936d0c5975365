package handlers

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"student-records/middleware"
	"student-records/models"
)

const tokenValidity = "This token remains valid until a new one is generated for this class"

type StudentHandler struct {
	roster  RosterService
	tokens  TokenRegistry
	baseURL string
}

func NewStudentHandler(r RosterService, t TokenRegistry, baseURL string) *StudentHandler {
	return &StudentHandler{roster: r, tokens: t, baseURL: baseURL}
}

// GenerateClassURL handles POST /api/students/class/:className/generate-url
func (h *StudentHandler) GenerateClassURL(c *fiber.Ctx) error {
	className := middleware.PathParam(c, "className")

	ctx, cancel := requestContext(c)
	defer cancel()

	exists, err := h.roster.ClassExists(ctx, className)
	if err != nil {
		return respondError(c, err)
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	token := h.tokens.Issue(className)
	accessURL := fmt.Sprintf("/api/students/class/%s/%s", url.PathEscape(className), token)

	base := h.baseURL
	if base == "" {
		base = c.BaseURL()
	}

	admin, _ := middleware.CurrentAdmin(c)
	slog.Info("class access url generated", "class", className, "by", admin.Username)

	return c.JSON(fiber.Map{
		"message":   "Unique access URL generated successfully",
		"className": className,
		"accessUrl": accessURL,
		"fullUrl":   base + accessURL,
		"expiresIn": tokenValidity,
	})
}

// GetByClass handles GET /api/students/class/:className/:uniqueId
func (h *StudentHandler) GetByClass(c *fiber.Ctx) error {
	className := middleware.PathParam(c, "className")

	ctx, cancel := requestContext(c)
	defer cancel()

	students, err := h.roster.ListByClass(ctx, className)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"className":     className,
		"totalStudents": len(students),
		"students":      students,
	})
}

// GetAll handles GET /api/students
func (h *StudentHandler) GetAll(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	students, err := h.roster.List(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"totalStudents": len(students),
		"students":      students,
	})
}

// Get handles GET /api/students/:id
func (h *StudentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	student, err := h.roster.Get(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(student)
}

// Create handles POST /api/students
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req models.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	student, err := h.roster.Add(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("student added", "id", student.ID, "student_id", student.StudentID, "class", student.Class)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": student,
	})
}

// GetClasses handles GET /api/classes
func (h *StudentHandler) GetClasses(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	classes, err := h.roster.Classes(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"totalClasses": len(classes),
		"classes":      classes,
	})
}
