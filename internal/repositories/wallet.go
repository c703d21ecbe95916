package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
)

// WalletWriteRepository handles balance mutations. Both operations are
// single atomic statements, so concurrent calls against the same
// account serialize on the row while different accounts proceed in
// parallel.
type WalletWriteRepository struct {
	db *sqlx.DB
}

func NewWalletWriteRepository(db *sqlx.DB) *WalletWriteRepository {
	return &WalletWriteRepository{db: db}
}

// Credit performs an UPSERT: creates the wallet row if absent,
// otherwise increases the balance. Returns the post-credit balance.
func (r *WalletWriteRepository) Credit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error) {
	query := `
		INSERT INTO wallets (wallet_id, account_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (account_id, currency)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, uuid.New(), accountID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Debit decreases the balance only when it covers the amount; the
// read-then-write is one atomic step. Returns sql.ErrNoRows when the
// wallet is missing or the balance is insufficient.
func (r *WalletWriteRepository) Debit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE account_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, accountID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// WalletReadRepository handles balance reads.
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetByAccountID retrieves all balances for an account as a
// map[currency]balance. Currencies without a wallet row are absent.
func (r *WalletReadRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (map[string]float64, error) {
	const query = `
		SELECT currency, balance
		FROM wallets
		WHERE account_id = $1
	`

	var wallets []struct {
		Currency string  `db:"currency"`
		Balance  float64 `db:"balance"`
	}

	err := r.db.SelectContext(ctx, &wallets, query, accountID)

	balances := make(map[string]float64, len(wallets))
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", balances,
		"error", err,
	)

	return balances, err
}
