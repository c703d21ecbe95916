package services

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// Error variables
var (
	// ErrEmptyRewardPool indicates a catalog configured with no drawable
	// templates. Operator error: a correctly seeded catalog never hits this.
	ErrEmptyRewardPool = errors.New("reward pool is empty")
)

// DropEngine draws one reward template per case opening. The draw is a
// single joint weighted selection over fully-specified templates: the
// probability of drawing template i is weight_i over the pool's total
// weight. Name, rarity and value are never sampled independently.
type DropEngine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDropEngine creates a DropEngine seeded for reproducible draws.
func NewDropEngine(seed int64) *DropEngine {
	return &DropEngine{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Draw selects one template from the pool. Templates with non-positive
// weight are never selected; a pool without any drawable template
// returns ErrEmptyRewardPool.
func (e *DropEngine) Draw(pool []models.RewardItemDB) (*models.RewardItemDB, error) {
	var total float64
	for _, item := range pool {
		if item.Weight > 0 {
			total += item.Weight
		}
	}
	if total <= 0 {
		return nil, ErrEmptyRewardPool
	}

	e.mu.Lock()
	target := e.rnd.Float64() * total
	e.mu.Unlock()

	for i := range pool {
		if pool[i].Weight <= 0 {
			continue
		}
		target -= pool[i].Weight
		if target < 0 {
			return &pool[i], nil
		}
	}

	// Float accumulation can leave target at ~0 past the last item.
	for i := len(pool) - 1; i >= 0; i-- {
		if pool[i].Weight > 0 {
			return &pool[i], nil
		}
	}
	return nil, ErrEmptyRewardPool
}
