package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a local account. PasswordHash is empty only for accounts
// created through federated login, which have no local password path.
// TokenVersion is embedded in issued tokens; bumping it revokes every
// outstanding session for the user.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username     string     `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Email        string     `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `json:"-" db:"password_hash" gorm:"column:password_hash;type:text;not null"`
	Role         string     `json:"role" db:"role" gorm:"type:text;not null;default:'user'"`
	TokenVersion int        `json:"-" db:"token_version" gorm:"column:token_version;not null;default:0"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" gorm:"not null"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" gorm:"column:last_login_at"`
}

// InsertUser is the payload for creating a user record
type InsertUser struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

// NewUser builds a User from an insert payload, applying defaults.
func NewUser(input InsertUser) *User {
	role := input.Role
	if role != RoleAdmin {
		role = RoleUser
	}
	return &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
