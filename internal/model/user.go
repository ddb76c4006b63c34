package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Staff accounts are created by an administrator; there is no
// self-service registration.  The role determines which routes the
// account may reach (see middleware.RequireRole).
//
// Fields:
//  ID           – CHAR(36) UUID primary key.
//  Email        – unique email address, stored lower-cased.
//  FirstName    – given name.
//  LastName     – family name.
//  PasswordHash – bcrypt hashed password.
//  Role         – ADMIN or EMPLOYEE.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role names stored in users.role and carried in the JWT "role" claim.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uint64
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
