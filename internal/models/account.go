package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents an account record in the database.
// Accounts are created on first identity resolution and never
// physically deleted; IsActive soft-deactivates them.
type AccountDB struct {
	AccountID    uuid.UUID `json:"id" db:"account_id"`                // Primary key, stable, never reused
	TelegramID   string    `json:"telegram_id" db:"telegram_id"`      // Unique external-platform id, immutable once set
	Username     *string   `json:"username" db:"username"`            // Optional display name
	FirstName    *string   `json:"first_name" db:"first_name"`        // Optional profile field
	LastName     *string   `json:"last_name" db:"last_name"`          // Optional profile field
	ReferralCode string    `json:"referral_code" db:"referral_code"`  // Unique, generated at creation
	ReferredBy   *string   `json:"referred_by" db:"referred_by"`      // Soft reference to the referrer's code
	IsActive     bool      `json:"is_active" db:"is_active"`          // Soft-delete flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`        // Creation timestamp
	LastLogin    time.Time `json:"last_login" db:"last_login"`        // Updated on every identity resolution
}
