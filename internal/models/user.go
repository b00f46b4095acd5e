package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`                       // Primary key
	Username     string     `json:"username" db:"username"`                // Unique username
	Email        string     `json:"email" db:"email"`                      // Unique, lower-cased email
	PasswordHash string     `json:"-" db:"password_hash"`                  // bcrypt hash
	IsPremium    bool       `json:"is_premium" db:"is_premium"`            // Premium tier flag, never reset
	PremiumSince *time.Time `json:"premium_since,omitempty" db:"premium_since"`
	LoginCount   int        `json:"login_count" db:"login_count"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
