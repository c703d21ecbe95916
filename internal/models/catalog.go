package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseDB represents a purchasable case in the catalog. Immutable after
// creation except for the active flag, which gates purchasability.
type CaseDB struct {
	CaseID      uuid.UUID `json:"id" db:"case_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Price       float64   `json:"price" db:"price"`       // Positive, in Currency
	Currency    string    `json:"currency" db:"currency"` // Single currency per case
	Rarity      string    `json:"rarity" db:"rarity"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RewardItemDB is an immutable template describing a possible drop.
// Weight drives the joint weighted draw: the probability of drawing a
// template equals its weight over the pool's total weight.
type RewardItemDB struct {
	RewardID    uuid.UUID `json:"id" db:"reward_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Rarity      string    `json:"rarity" db:"rarity"`
	Value       float64   `json:"value" db:"value"`   // Worth in EZCOIN
	Weight      float64   `json:"weight" db:"weight"` // Selection weight, must be positive
}
