package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// TransactionWriteRepository appends immutable ledger records. Rows are
// never updated or deleted through this repository.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save appends a single transaction row.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, account_id, kind, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{txn.TransactionID, txn.AccountID, txn.Kind, txn.Amount, txn.Currency, txn.Status}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// TransactionReadRepository handles ledger reads.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByAccountID returns an account's transactions, newest first.
func (r *TransactionReadRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, account_id, kind, amount, currency, status, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, transaction_id
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// SumCompletedByCurrency returns the per-currency sum of completed
// transaction amounts for an account. The reconciliation invariant
// requires these sums to equal the account's current balances.
func (r *TransactionReadRepository) SumCompletedByCurrency(ctx context.Context, accountID uuid.UUID) (map[string]float64, error) {
	const query = `
		SELECT currency, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE account_id = $1 AND status = 'completed'
		GROUP BY currency
	`

	var rows []struct {
		Currency string  `db:"currency"`
		Total    float64 `db:"total"`
	}

	err := r.db.SelectContext(ctx, &rows, query, accountID)

	sums := make(map[string]float64, len(rows))
	for _, row := range rows {
		sums[row.Currency] = row.Total
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", sums,
		"error", err,
	)

	return sums, err
}
