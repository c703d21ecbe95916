package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// Error variables
var (
	// ErrAccountNotFound is returned when the session's account no longer exists.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCaseNotFound is returned when the requested case does not exist.
	ErrCaseNotFound = errors.New("case not found")
	// ErrCaseUnavailable is returned when the case's active flag is unset.
	ErrCaseUnavailable = errors.New("case is not available")
)

// AccountGetter looks up accounts by internal id.
type AccountGetter interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// Catalog provides case lookups and the reward pool.
type Catalog interface {
	GetCase(ctx context.Context, caseID uuid.UUID) (*models.CaseDB, error)
	RewardPool(ctx context.Context) ([]models.RewardItemDB, error)
}

// Ledger provides the balance and recording operations the orchestrator composes.
type Ledger interface {
	Debit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error)
	Credit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error)
	Record(ctx context.Context, accountID uuid.UUID, kind string, amount float64, currency, status string) (*models.TransactionDB, error)
}

// ItemWriter mints owned items and unwinds failed mints.
type ItemWriter interface {
	Save(ctx context.Context, item models.OwnedItemDB) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// Drawer draws one reward template from a pool.
type Drawer interface {
	Draw(pool []models.RewardItemDB) (*models.RewardItemDB, error)
}

// OpenResult is the outcome of a completed case opening.
type OpenResult struct {
	Item       models.OwnedItemView  // The minted reward instance
	Txn        models.TransactionDB  // The recorded case_open transaction
	NewBalance float64               // Post-debit balance in the case currency
}

// CaseOpenService orchestrates a case opening: debit, draw, mint,
// record. The debit-to-record sequence is one logical unit; any
// failure after the debit triggers exactly one compensating credit
// before the error is surfaced, so the user is never charged without
// a reward or a refund.
type CaseOpenService struct {
	accounts AccountGetter
	catalog  Catalog
	ledger   Ledger
	items    ItemWriter
	drop     Drawer
}

// NewCaseOpenService creates a new CaseOpenService.
func NewCaseOpenService(accounts AccountGetter, catalog Catalog, ledger Ledger, items ItemWriter, drop Drawer) *CaseOpenService {
	return &CaseOpenService{
		accounts: accounts,
		catalog:  catalog,
		ledger:   ledger,
		items:    items,
		drop:     drop,
	}
}

// OpenCase runs the opening state machine for one request.
func (s *CaseOpenService) OpenCase(ctx context.Context, accountID, caseID uuid.UUID) (*OpenResult, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, ErrAccountNotFound
	}

	c, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if !c.IsActive {
		return nil, ErrCaseUnavailable
	}

	// The reward pool is loaded before the debit so that a persistence
	// fault here rejects the request with no side effects.
	pool, err := s.catalog.RewardPool(ctx)
	if err != nil {
		return nil, err
	}

	newBalance, err := s.ledger.Debit(ctx, accountID, c.Currency, c.Price)
	if err != nil {
		return nil, err
	}
	debitedAt := time.Now().UTC()

	reward, err := s.drop.Draw(pool)
	if err != nil {
		s.compensate(ctx, accountID, c, debitedAt)
		return nil, err
	}

	item := models.OwnedItemDB{
		ItemID:    uuid.New(),
		RewardID:  reward.RewardID,
		AccountID: accountID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.items.Save(ctx, item); err != nil {
		s.compensate(ctx, accountID, c, debitedAt)
		return nil, err
	}

	txn, err := s.ledger.Record(ctx, accountID, models.TxKindCaseOpen, -c.Price, c.Currency, models.TxStatusCompleted)
	if err != nil {
		// Unwind the mint first so a compensated opening leaves no item behind.
		if delErr := s.items.Delete(ctx, item.ItemID); delErr != nil {
			logger.Log.Errorw("failed to unwind minted item",
				"item_id", item.ItemID, "account_id", accountID, "error", delErr)
		}
		s.compensate(ctx, accountID, c, debitedAt)
		return nil, err
	}

	logger.Log.Infow("case opened",
		"account_id", accountID, "case_id", caseID,
		"reward_id", reward.RewardID, "rarity", reward.Rarity, "new_balance", newBalance)

	return &OpenResult{
		Item: models.OwnedItemView{
			ItemID:      item.ItemID,
			RewardID:    reward.RewardID,
			Name:        reward.Name,
			Description: reward.Description,
			ImageURL:    reward.ImageURL,
			Rarity:      reward.Rarity,
			Value:       reward.Value,
			CreatedAt:   item.CreatedAt,
		},
		Txn:        *txn,
		NewBalance: newBalance,
	}, nil
}

// compensate credits the case price back after a post-debit failure.
// A single attempt: if it fails too, balance and ledger have diverged
// and the inconsistency is logged with everything needed to replay the
// repair by hand.
func (s *CaseOpenService) compensate(ctx context.Context, accountID uuid.UUID, c *models.CaseDB, debitedAt time.Time) {
	if _, err := s.ledger.Credit(ctx, accountID, c.Currency, c.Price); err != nil {
		logger.Log.Errorw("FATAL: compensating credit failed, manual reconciliation required",
			"account_id", accountID,
			"case_id", c.CaseID,
			"amount", c.Price,
			"currency", c.Currency,
			"debited_at", debitedAt,
			"failed_at", time.Now().UTC(),
			"error", err,
		)
		return
	}
	logger.Log.Warnw("case opening compensated",
		"account_id", accountID, "case_id", c.CaseID, "amount", c.Price, "currency", c.Currency)
}
