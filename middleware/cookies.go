package middleware

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
)

// CookieKey derives a 256-bit cookie encryption key from the session
// secret.
func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// EncryptCookies encrypts outgoing cookies and decrypts incoming ones with
// a key derived from secret. Cookies that fail to decrypt are dropped.
func EncryptCookies(secret string) fiber.Handler {
	return encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(secret),
	})
}
