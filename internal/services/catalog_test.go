package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ezdrop/ezdrop-backend/internal/models"
)

func TestCatalogService_ActiveCases_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []models.CaseDB{{CaseID: uuid.New(), Name: "Starter Case", Price: 40, Currency: models.EZCOIN, IsActive: true}}

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetActiveCases(gomock.Any()).Return(cached, nil)

	// Storage must not be touched on a cache hit.
	svc := NewCatalogService(NewMockCaseReader(ctrl), NewMockRewardReader(ctrl), cache)

	cases, err := svc.ActiveCases(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, cases)
}

func TestCatalogService_ActiveCases_CacheMissFallsBackToStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []models.CaseDB{
		{CaseID: uuid.New(), Name: "Starter Case", Price: 40, Currency: models.EZCOIN, IsActive: true},
		{CaseID: uuid.New(), Name: "Premium Case", Price: 200, Currency: models.EZCOIN, IsActive: true},
	}

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetActiveCases(gomock.Any()).Return(nil, errors.New("not found in cache"))
	cache.EXPECT().SetActiveCases(gomock.Any(), stored).Return(nil)

	caseReader := NewMockCaseReader(ctrl)
	caseReader.EXPECT().GetActive(gomock.Any()).Return(stored, nil)

	svc := NewCatalogService(caseReader, NewMockRewardReader(ctrl), cache)

	cases, err := svc.ActiveCases(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, cases)
}

func TestCatalogService_ActiveCases_CacheWriteFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []models.CaseDB{{CaseID: uuid.New(), Name: "Starter Case", IsActive: true}}

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetActiveCases(gomock.Any()).Return(nil, errors.New("not found in cache"))
	cache.EXPECT().SetActiveCases(gomock.Any(), stored).Return(errors.New("redis down"))

	caseReader := NewMockCaseReader(ctrl)
	caseReader.EXPECT().GetActive(gomock.Any()).Return(stored, nil)

	svc := NewCatalogService(caseReader, NewMockRewardReader(ctrl), cache)

	cases, err := svc.ActiveCases(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, cases)
}

func TestCatalogService_ActiveCases_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db down")

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetActiveCases(gomock.Any()).Return(nil, errors.New("not found in cache"))

	caseReader := NewMockCaseReader(ctrl)
	caseReader.EXPECT().GetActive(gomock.Any()).Return(nil, dbErr)

	svc := NewCatalogService(caseReader, NewMockRewardReader(ctrl), cache)

	_, err := svc.ActiveCases(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestCatalogService_ActiveCases_NoCacheConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []models.CaseDB{{CaseID: uuid.New(), Name: "Starter Case", IsActive: true}}

	caseReader := NewMockCaseReader(ctrl)
	caseReader.EXPECT().GetActive(gomock.Any()).Return(stored, nil)

	svc := NewCatalogService(caseReader, NewMockRewardReader(ctrl), nil)

	cases, err := svc.ActiveCases(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, cases)
}

func TestCatalogService_GetCase_BypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	want := &models.CaseDB{CaseID: caseID, Name: "Starter Case", IsActive: true}

	// The cache mock gets no expectations: a cache read here fails the test.
	cache := NewMockCatalogCache(ctrl)

	caseReader := NewMockCaseReader(ctrl)
	caseReader.EXPECT().GetByID(gomock.Any(), caseID).Return(want, nil)

	svc := NewCatalogService(caseReader, NewMockRewardReader(ctrl), cache)

	got, err := svc.GetCase(context.Background(), caseID)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_RewardPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool := []models.RewardItemDB{
		{RewardID: uuid.New(), Name: "Cyber Sword", Rarity: models.RarityCommon, Weight: 1},
		{RewardID: uuid.New(), Name: "Quantum Gem", Rarity: models.RarityLegendary, Weight: 0.1},
	}

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetRewardPool(gomock.Any()).Return(nil, errors.New("not found in cache"))
	cache.EXPECT().SetRewardPool(gomock.Any(), pool).Return(nil)

	rewardReader := NewMockRewardReader(ctrl)
	rewardReader.EXPECT().GetPool(gomock.Any()).Return(pool, nil)

	svc := NewCatalogService(NewMockCaseReader(ctrl), rewardReader, cache)

	got, err := svc.RewardPool(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, pool, got)

	// Second read is served from cache.
	cache.EXPECT().GetRewardPool(gomock.Any()).Return(pool, nil)
	got, err = svc.RewardPool(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, pool, got)
}
