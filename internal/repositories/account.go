package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByTelegramID returns the account bound to an external platform id,
// or nil when no such account exists.
func (r *AccountReadRepository) GetByTelegramID(ctx context.Context, telegramID string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, telegram_id, username, first_name, last_name,
		       referral_code, referred_by, is_active, created_at, last_login
		FROM accounts
		WHERE telegram_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, telegramID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{telegramID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// GetByID returns the account by its internal id, or nil when missing.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, telegram_id, username, first_name, last_name,
		       referral_code, referred_by, is_active, created_at, last_login
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// ReferralCodeExists reports whether a referral code is already taken.
func (r *AccountReadRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE referral_code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)

	logger.Log.Infow(
		"query", query,
		"args", []any{code},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// AccountWriteRepository handles account write operations.
type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Save inserts a new account created by identity resolution.
func (r *AccountWriteRepository) Save(ctx context.Context, account models.AccountDB) error {
	query := `
		INSERT INTO accounts (account_id, telegram_id, username, first_name, last_name,
		                      referral_code, referred_by, is_active, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
	`
	args := []any{
		account.AccountID, account.TelegramID, account.Username,
		account.FirstName, account.LastName, account.ReferralCode, account.ReferredBy,
	}

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

// Touch updates the last-seen timestamp and mutable profile fields of
// an existing account. Identity fields and balances are never touched.
func (r *AccountWriteRepository) Touch(ctx context.Context, accountID uuid.UUID, username, firstName, lastName *string) error {
	query := `
		UPDATE accounts
		SET username   = COALESCE($2, username),
		    first_name = COALESCE($3, first_name),
		    last_name  = COALESCE($4, last_name),
		    last_login = NOW()
		WHERE account_id = $1
	`
	args := []any{accountID, username, firstName, lastName}

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
