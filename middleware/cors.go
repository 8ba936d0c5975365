package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/cors"
)

// SetupCORS returns CORS middleware that reflects any origin and allows
// credentials, so browsers send the session cookie cross-site.
func SetupCORS() fiber.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc:  func(string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes preflight cache
	})

	return adaptor.HTTPMiddleware(c.Handler)
}
