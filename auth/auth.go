// Package auth holds the administrator credentials and verifies logins.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"student-records/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const DefaultCost = bcrypt.DefaultCost

// Service verifies admin logins against bcrypt hashes.
type Service struct {
	cost int

	mu     sync.RWMutex
	admins map[string]models.AdminUser

	// dummyHash is compared against when the username is unknown.
	dummyHash []byte
}

func NewService(cost int) (*Service, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}
	return &Service{
		cost:      cost,
		admins:    make(map[string]models.AdminUser),
		dummyHash: dummy,
	}, nil
}

func (s *Service) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Bootstrap registers an admin with the given plain password.
func (s *Service) Bootstrap(id int, username, password string) (models.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AdminUser{}, fmt.Errorf("username and password are required")
	}
	hash, err := s.HashPassword(password)
	if err != nil {
		return models.AdminUser{}, err
	}

	admin := models.AdminUser{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.admins[username]; exists {
		return models.AdminUser{}, fmt.Errorf("admin %q already exists", username)
	}
	s.admins[username] = admin
	return admin, nil
}

// Login returns the session identity for a matching username and
// password. Unknown users and wrong passwords are indistinguishable.
func (s *Service) Login(ctx context.Context, username, password string) (models.SessionUser, error) {
	if err := ctx.Err(); err != nil {
		return models.SessionUser{}, err
	}

	s.mu.RLock()
	admin, ok := s.admins[username]
	s.mu.RUnlock()

	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return models.SessionUser{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.SessionUser{}, ErrInvalidCredentials
	}

	return models.SessionUser{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}, nil
}
