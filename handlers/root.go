package handlers

import "github.com/gofiber/fiber/v2"

// Root handles GET / and describes the API surface.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": AppName,
		"version": APIVersion,
		"endpoints": fiber.Map{
			"login":              "POST /api/auth/login",
			"logout":             "POST /api/auth/logout",
			"generateClassUrl":   "POST /api/students/class/:className/generate-url (admin only)",
			"getStudentsByClass": "GET /api/students/class/:className/:uniqueId",
			"addStudent":         "POST /api/students (admin only)",
			"getStudent":         "GET /api/students/:id (admin only)",
			"getAllStudents":     "GET /api/students (admin only)",
			"getClasses":         "GET /api/classes (admin only)",
		},
	})
}
