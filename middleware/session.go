package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"student-records/models"
)

const (
	SessionCookieName = "sid"

	keyAdminID  = "admin_id"
	keyUsername = "username"
	keyRole     = "role"

	localsSessionUser = "session_user"
)

type SessionConfig struct {
	TTL    time.Duration
	Secure bool
	// Storage defaults to Fiber's in-memory storage when nil.
	Storage fiber.Storage
}

func NewSessionStore(cfg SessionConfig) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.TTL,
		Storage:        cfg.Storage,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
	})
}

// StartSession binds user to a freshly generated session ID.
func StartSession(c *fiber.Ctx, store *session.Store, user models.SessionUser) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(keyAdminID, user.ID)
	sess.Set(keyUsername, user.Username)
	sess.Set(keyRole, user.Role)
	return sess.Save()
}

// EndSession destroys the caller's session, if there is one.
func EndSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// RequireAdmin rejects the request with 401 unless it carries an admin
// session. The session identity is stored in the request locals for
// handlers to read with CurrentAdmin.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			slog.Error("failed to load session", "path", c.Path(), "error", err)
			return unauthorized(c)
		}

		id, idOk := sess.Get(keyAdminID).(int)
		username, _ := sess.Get(keyUsername).(string)
		role, roleOk := sess.Get(keyRole).(string)
		if !idOk || !roleOk || role != models.RoleAdmin {
			return unauthorized(c)
		}

		c.Locals(localsSessionUser, models.SessionUser{
			ID:       id,
			Username: username,
			Role:     role,
		})
		return c.Next()
	}
}

// CurrentAdmin returns the identity placed by RequireAdmin.
func CurrentAdmin(c *fiber.Ctx) (models.SessionUser, bool) {
	user, ok := c.Locals(localsSessionUser).(models.SessionUser)
	return user, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized. Admin access required.",
	})
}
