package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// CaseReader reads the case catalog from storage.
type CaseReader interface {
	GetActive(ctx context.Context) ([]models.CaseDB, error)
	GetByID(ctx context.Context, caseID uuid.UUID) (*models.CaseDB, error)
}

// RewardReader reads the reward pool from storage.
type RewardReader interface {
	GetPool(ctx context.Context) ([]models.RewardItemDB, error)
}

// CatalogCache caches catalog reads.
type CatalogCache interface {
	GetActiveCases(ctx context.Context) ([]models.CaseDB, error)
	SetActiveCases(ctx context.Context, cases []models.CaseDB) error
	GetRewardPool(ctx context.Context) ([]models.RewardItemDB, error)
	SetRewardPool(ctx context.Context, pool []models.RewardItemDB) error
}

// CatalogService exposes the read-only reward catalog, serving from
// cache first and falling back to storage. Cache write failures are
// logged and ignored.
type CatalogService struct {
	cases   CaseReader
	rewards RewardReader
	cache   CatalogCache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(cases CaseReader, rewards RewardReader, cache CatalogCache) *CatalogService {
	return &CatalogService{
		cases:   cases,
		rewards: rewards,
		cache:   cache,
	}
}

// ActiveCases returns purchasable cases in stable order by id.
func (s *CatalogService) ActiveCases(ctx context.Context) ([]models.CaseDB, error) {
	if s.cache != nil {
		if cases, err := s.cache.GetActiveCases(ctx); err == nil {
			return cases, nil
		}
	}

	cases, err := s.cases.GetActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load active cases", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetActiveCases(ctx, cases); err != nil {
			logger.Log.Errorw("failed to cache active cases", "error", err)
		}
	}

	return cases, nil
}

// GetCase returns a case by id, or nil when missing. Lookups bypass
// the cache: the active flag must be current at purchase time.
func (s *CatalogService) GetCase(ctx context.Context, caseID uuid.UUID) (*models.CaseDB, error) {
	return s.cases.GetByID(ctx, caseID)
}

// RewardPool returns all reward templates.
func (s *CatalogService) RewardPool(ctx context.Context) ([]models.RewardItemDB, error) {
	if s.cache != nil {
		if pool, err := s.cache.GetRewardPool(ctx); err == nil {
			return pool, nil
		}
	}

	pool, err := s.rewards.GetPool(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load reward pool", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRewardPool(ctx, pool); err != nil {
			logger.Log.Errorw("failed to cache reward pool", "error", err)
		}
	}

	return pool, nil
}
