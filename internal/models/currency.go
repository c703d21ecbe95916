package models

// Internal currency codes.
const (
	EZCOIN = "EZCOIN"
	EZDROP = "EZDROP"
)

// Rarity tiers, ordered common < rare < epic < legendary.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// rarityRank orders the tiers for comparison.
var rarityRank = map[string]int{
	RarityCommon:    0,
	RarityRare:      1,
	RarityEpic:      2,
	RarityLegendary: 3,
}

// RarityRank returns the ordinal of a rarity tier, -1 for unknown tiers.
func RarityRank(rarity string) int {
	if rank, ok := rarityRank[rarity]; ok {
		return rank
	}
	return -1
}
