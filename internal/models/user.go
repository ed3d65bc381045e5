package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// UserStatus is the lifecycle state of an account.
type UserStatus string

// UserRole controls access to admin-only operations.
type UserRole string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBanned  UserStatus = "BANNED"
	UserStatusDeleted UserStatus = "DELETED"

	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// User represents a registered account
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	FirstName string     `json:"first_name" gorm:"size:50;not null"`
	LastName  string     `json:"last_name" gorm:"size:50;not null"`
	Username  string     `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Bio       string     `json:"bio,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	Status    UserStatus `json:"status" gorm:"size:20;default:'ACTIVE';not null"`
	Role      UserRole   `json:"role" gorm:"size:20;default:'USER';not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RegisterRequest defines the request body for creating a new account
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest accepts either the email or the username in the identifier field
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
