package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// Redis keys for the catalog cache.
const (
	activeCasesKey = "catalog:cases:active"
	rewardPoolKey  = "catalog:rewards:pool"
)

// CatalogCacheRepository caches the read-only catalog in Redis. The
// catalog is immutable apart from active-flag toggles, so a short TTL
// bounds the staleness window after an admin toggle.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL.
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetActiveCases fetches the cached active case list.
func (r *CatalogCacheRepository) GetActiveCases(ctx context.Context) ([]models.CaseDB, error) {
	val, err := r.client.Get(ctx, activeCasesKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", activeCasesKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("active cases not found in cache")
		}
		return nil, err
	}

	var cases []models.CaseDB
	if err := json.Unmarshal([]byte(val), &cases); err != nil {
		logger.Log.Errorw("failed to decode cached cases", "key", activeCasesKey, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", activeCasesKey,
		"result", len(cases),
		"error", nil,
	)

	return cases, nil
}

// SetActiveCases caches the active case list with expiration.
func (r *CatalogCacheRepository) SetActiveCases(ctx context.Context, cases []models.CaseDB) error {
	data, err := json.Marshal(cases)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, activeCasesKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", activeCasesKey,
		"result", len(cases),
		"error", err,
	)

	return err
}

// GetRewardPool fetches the cached reward pool.
func (r *CatalogCacheRepository) GetRewardPool(ctx context.Context) ([]models.RewardItemDB, error) {
	val, err := r.client.Get(ctx, rewardPoolKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", rewardPoolKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("reward pool not found in cache")
		}
		return nil, err
	}

	var pool []models.RewardItemDB
	if err := json.Unmarshal([]byte(val), &pool); err != nil {
		logger.Log.Errorw("failed to decode cached reward pool", "key", rewardPoolKey, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", rewardPoolKey,
		"result", len(pool),
		"error", nil,
	)

	return pool, nil
}

// SetRewardPool caches the reward pool with expiration.
func (r *CatalogCacheRepository) SetRewardPool(ctx context.Context, pool []models.RewardItemDB) error {
	data, err := json.Marshal(pool)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, rewardPoolKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", rewardPoolKey,
		"result", len(pool),
		"error", err,
	)

	return err
}
