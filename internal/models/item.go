package models

import (
	"time"

	"github.com/google/uuid"
)

// OwnedItemDB is a reward instance minted for one account, created
// exactly once per successful case opening.
type OwnedItemDB struct {
	ItemID    uuid.UUID `json:"id" db:"item_id"`
	RewardID  uuid.UUID `json:"reward_id" db:"reward_id"`
	AccountID uuid.UUID `json:"account_id" db:"account_id"`
	IsForSale bool      `json:"is_for_sale" db:"is_for_sale"` // Marketplace flow itself is out of scope
	SalePrice float64   `json:"sale_price" db:"sale_price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OwnedItemView joins an owned item with its reward template for
// inventory listings and case-opening responses.
type OwnedItemView struct {
	ItemID      uuid.UUID `json:"id" db:"item_id"`
	RewardID    uuid.UUID `json:"reward_id" db:"reward_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Rarity      string    `json:"rarity" db:"rarity"`
	Value       float64   `json:"value" db:"value"`
	IsForSale   bool      `json:"is_for_sale" db:"is_for_sale"`
	SalePrice   float64   `json:"sale_price" db:"sale_price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
