// Package tokens keeps the shareable access token of each class.
package tokens

import (
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired access token")

// Registry holds at most one live token per class. Issuing a token for a
// class replaces the previous one.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]string
	newID  func() string
}

func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]string),
		newID:  uuid.NewString,
	}
}

// Issue mints a random v4 UUID for className and makes it the only valid
// token for that class.
func (r *Registry) Issue(className string) string {
	token := r.newID()

	r.mu.Lock()
	r.tokens[className] = token
	r.mu.Unlock()

	return token
}

// Validate reports ErrInvalidToken unless token is the current token of
// className.
func (r *Registry) Validate(className, token string) error {
	r.mu.RLock()
	current, ok := r.tokens[className]
	r.mu.RUnlock()

	if !ok || token == "" {
		return ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(current), []byte(token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
