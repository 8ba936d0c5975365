package models

const RoleAdmin = "admin"

// AdminUser is the single administrator allowed to manage the roster.
// PasswordHash holds a bcrypt hash and is never serialized.
type AdminUser struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// SessionUser is the identity carried by an authenticated admin session.
type SessionUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
