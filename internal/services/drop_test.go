package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ezdrop/ezdrop-backend/internal/models"
)

func pool3() []models.RewardItemDB {
	return []models.RewardItemDB{
		{RewardID: uuid.New(), Name: "Cyber Sword", Rarity: models.RarityCommon, Value: 10, Weight: 1},
		{RewardID: uuid.New(), Name: "Neon Shield", Rarity: models.RarityRare, Value: 50, Weight: 2},
		{RewardID: uuid.New(), Name: "Digital Crown", Rarity: models.RarityEpic, Value: 200, Weight: 7},
	}
}

func TestDropEngine_Draw_WeightedFairness(t *testing.T) {
	engine := NewDropEngine(42)
	pool := pool3()

	const draws = 100000
	counts := make(map[string]int, len(pool))
	for i := 0; i < draws; i++ {
		item, err := engine.Draw(pool)
		assert.NoError(t, err)
		counts[item.Name]++
	}

	// Chi-squared against expected frequencies for weights 1:2:7.
	// df=2, critical value 13.82 at p=0.001.
	expected := map[string]float64{
		"Cyber Sword":   draws * 1.0 / 10.0,
		"Neon Shield":   draws * 2.0 / 10.0,
		"Digital Crown": draws * 7.0 / 10.0,
	}
	var chi2 float64
	for name, exp := range expected {
		diff := float64(counts[name]) - exp
		chi2 += diff * diff / exp
	}
	assert.Less(t, chi2, 13.82, "observed frequencies deviate from weights: %v", counts)
}

func TestDropEngine_Draw_Deterministic(t *testing.T) {
	pool := pool3()

	a := NewDropEngine(7)
	b := NewDropEngine(7)

	for i := 0; i < 1000; i++ {
		itemA, errA := a.Draw(pool)
		itemB, errB := b.Draw(pool)
		assert.NoError(t, errA)
		assert.NoError(t, errB)
		assert.Equal(t, itemA.RewardID, itemB.RewardID)
	}
}

func TestDropEngine_Draw_SkipsNonPositiveWeights(t *testing.T) {
	engine := NewDropEngine(1)
	pool := []models.RewardItemDB{
		{RewardID: uuid.New(), Name: "Broken", Weight: 0},
		{RewardID: uuid.New(), Name: "Negative", Weight: -3},
		{RewardID: uuid.New(), Name: "Quantum Gem", Rarity: models.RarityLegendary, Value: 1000, Weight: 0.5},
	}

	for i := 0; i < 10000; i++ {
		item, err := engine.Draw(pool)
		assert.NoError(t, err)
		assert.Equal(t, "Quantum Gem", item.Name)
	}
}

func TestDropEngine_Draw_EmptyPool(t *testing.T) {
	engine := NewDropEngine(1)

	_, err := engine.Draw(nil)
	assert.ErrorIs(t, err, ErrEmptyRewardPool)

	_, err = engine.Draw([]models.RewardItemDB{})
	assert.ErrorIs(t, err, ErrEmptyRewardPool)

	_, err = engine.Draw([]models.RewardItemDB{{Name: "Dud", Weight: 0}})
	assert.ErrorIs(t, err, ErrEmptyRewardPool)
}

func TestDropEngine_Draw_SingleItem(t *testing.T) {
	engine := NewDropEngine(99)
	only := models.RewardItemDB{RewardID: uuid.New(), Name: "Solo", Weight: 0.0001}

	item, err := engine.Draw([]models.RewardItemDB{only})
	assert.NoError(t, err)
	assert.Equal(t, only.RewardID, item.RewardID)
}
