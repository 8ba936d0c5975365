package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type TokenValidator interface {
	Validate(className, token string) error
}

// RequireClassToken lets the request through only when the :uniqueId path
// segment is the current access token of :className.
func RequireClassToken(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		className := PathParam(c, "className")
		token := PathParam(c, "uniqueId")

		if err := tokens.Validate(className, token); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid or expired access token for this class.",
			})
		}
		return c.Next()
	}
}

// PathParam returns the decoded value of a route parameter. The result is
// a copy and remains valid after the handler returns.
func PathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	return utils.CopyString(decoded)
}
