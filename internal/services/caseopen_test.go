package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ezdrop/ezdrop-backend/internal/models"
)

type caseOpenMocks struct {
	accounts *MockAccountGetter
	catalog  *MockCatalog
	ledger   *MockLedger
	items    *MockItemWriter
	drop     *MockDrawer
}

func newCaseOpenService(ctrl *gomock.Controller) (*CaseOpenService, caseOpenMocks) {
	m := caseOpenMocks{
		accounts: NewMockAccountGetter(ctrl),
		catalog:  NewMockCatalog(ctrl),
		ledger:   NewMockLedger(ctrl),
		items:    NewMockItemWriter(ctrl),
		drop:     NewMockDrawer(ctrl),
	}
	return NewCaseOpenService(m.accounts, m.catalog, m.ledger, m.items, m.drop), m
}

func activeAccount(id uuid.UUID) *models.AccountDB {
	return &models.AccountDB{AccountID: id, TelegramID: "123", ReferralCode: "AAAA1111", IsActive: true}
}

func starterCase(id uuid.UUID) *models.CaseDB {
	return &models.CaseDB{CaseID: id, Name: "Starter Case", Price: 40, Currency: models.EZCOIN, IsActive: true}
}

func TestCaseOpenService_OpenCase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	reward := models.RewardItemDB{
		RewardID: uuid.New(), Name: "Neon Shield",
		Rarity: models.RarityRare, Value: 50, Weight: 2,
	}
	pool := []models.RewardItemDB{reward}

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return(pool, nil)
	// Balance 100, case priced 40.
	m.ledger.EXPECT().Debit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(60.0, nil)
	m.drop.EXPECT().Draw(pool).Return(&reward, nil)

	var minted models.OwnedItemDB
	m.items.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.OwnedItemDB) error {
			minted = item
			return nil
		})

	recorded := &models.TransactionDB{
		TransactionID: uuid.New(),
		AccountID:     accountID,
		Kind:          models.TxKindCaseOpen,
		Amount:        -40,
		Currency:      models.EZCOIN,
		Status:        models.TxStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	m.ledger.EXPECT().
		Record(gomock.Any(), accountID, models.TxKindCaseOpen, -40.0, models.EZCOIN, models.TxStatusCompleted).
		Return(recorded, nil)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)

	assert.NoError(t, err)
	assert.Equal(t, 60.0, result.NewBalance)
	assert.Equal(t, minted.ItemID, result.Item.ItemID)
	assert.Equal(t, reward.RewardID, result.Item.RewardID)
	assert.Equal(t, reward.RewardID, minted.RewardID)
	assert.Equal(t, accountID, minted.AccountID)
	assert.Equal(t, models.RarityRare, result.Item.Rarity)
	assert.Equal(t, *recorded, result.Txn)
	assert.Equal(t, -40.0, result.Txn.Amount)
}

func TestCaseOpenService_OpenCase_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return([]models.RewardItemDB{{RewardID: uuid.New(), Weight: 1}}, nil)
	// Balance 10 against a 40 EZCOIN case. No draw, no mint, no record,
	// no compensation: the mocks above have no further expectations.
	m.ledger.EXPECT().Debit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(0.0, ErrInsufficientFunds)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_AccountMissingOrInactive(t *testing.T) {
	tests := []struct {
		name    string
		account *models.AccountDB
	}{
		{name: "missing account", account: nil},
		{name: "deactivated account", account: &models.AccountDB{AccountID: uuid.New(), IsActive: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCaseOpenService(ctrl)
			accountID := uuid.New()

			m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(tt.account, nil)

			result, err := svc.OpenCase(context.Background(), accountID, uuid.New())
			assert.ErrorIs(t, err, ErrAccountNotFound)
			assert.Nil(t, result)
		})
	}
}

func TestCaseOpenService_OpenCase_CaseMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(nil, nil)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, ErrCaseNotFound)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_CaseInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	retired := starterCase(caseID)
	retired.IsActive = false

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(retired, nil)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, ErrCaseUnavailable)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_PoolLoadFailureHasNoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	dbErr := errors.New("db down")

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	// The pool loads before the debit, so this failure never touches the wallet.
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return(nil, dbErr)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_DrawFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	pool := []models.RewardItemDB{}

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return(pool, nil)
	m.ledger.EXPECT().Debit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(60.0, nil)
	m.drop.EXPECT().Draw(pool).Return(nil, ErrEmptyRewardPool)
	m.ledger.EXPECT().Credit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(100.0, nil)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, ErrEmptyRewardPool)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_MintFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	reward := models.RewardItemDB{RewardID: uuid.New(), Name: "Cyber Sword", Weight: 1}
	pool := []models.RewardItemDB{reward}
	mintErr := errors.New("insert failed")

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return(pool, nil)
	m.ledger.EXPECT().Debit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(60.0, nil)
	m.drop.EXPECT().Draw(pool).Return(&reward, nil)
	m.items.EXPECT().Save(gomock.Any(), gomock.Any()).Return(mintErr)
	m.ledger.EXPECT().Credit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(100.0, nil)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, mintErr)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_RecordFailureUnwindsItemAndCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	reward := models.RewardItemDB{RewardID: uuid.New(), Name: "Cyber Sword", Weight: 1}
	pool := []models.RewardItemDB{reward}
	recordErr := errors.New("ledger write failed")

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return(pool, nil)
	m.ledger.EXPECT().Debit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(60.0, nil)
	m.drop.EXPECT().Draw(pool).Return(&reward, nil)

	var minted models.OwnedItemDB
	m.items.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.OwnedItemDB) error {
			minted = item
			return nil
		})
	m.ledger.EXPECT().
		Record(gomock.Any(), accountID, models.TxKindCaseOpen, -40.0, models.EZCOIN, models.TxStatusCompleted).
		Return(nil, recordErr)
	// The minted item is deleted before the compensating credit, so a
	// failed opening leaves neither an item nor a charge behind.
	m.items.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, itemID uuid.UUID) error {
			assert.Equal(t, minted.ItemID, itemID)
			return nil
		})
	m.ledger.EXPECT().Credit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(100.0, nil)

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, recordErr)
	assert.Nil(t, result)
}

func TestCaseOpenService_OpenCase_CompensationFailureStillSurfacesOriginalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCaseOpenService(ctrl)

	accountID := uuid.New()
	caseID := uuid.New()
	pool := []models.RewardItemDB{}

	m.accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), caseID).Return(starterCase(caseID), nil)
	m.catalog.EXPECT().RewardPool(gomock.Any()).Return(pool, nil)
	m.ledger.EXPECT().Debit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(60.0, nil)
	m.drop.EXPECT().Draw(pool).Return(nil, ErrEmptyRewardPool)
	m.ledger.EXPECT().Credit(gomock.Any(), accountID, models.EZCOIN, 40.0).Return(0.0, errors.New("credit failed"))

	result, err := svc.OpenCase(context.Background(), accountID, caseID)
	assert.ErrorIs(t, err, ErrEmptyRewardPool)
	assert.Nil(t, result)
}
