package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			telegram_id VARCHAR(64) NOT NULL UNIQUE,
			username VARCHAR(100),
			first_name VARCHAR(100),
			last_name VARCHAR(100),
			referral_code VARCHAR(8) NOT NULL UNIQUE,
			referred_by VARCHAR(8),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_login TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS wallets (
			wallet_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			account_id UUID NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
			currency VARCHAR(16) NOT NULL,
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (account_id, currency)
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertAccount(t *testing.T, db *sqlx.DB, accountID uuid.UUID, telegramID, referralCode string) {
	_, err := db.Exec(`INSERT INTO accounts (account_id, telegram_id, referral_code) VALUES ($1, $2, $3)`,
		accountID, telegramID, referralCode)
	assert.NoError(t, err)
}

func getBalance(t *testing.T, db *sqlx.DB, accountID uuid.UUID, currency string) float64 {
	var balance float64
	err := db.Get(&balance, `SELECT balance FROM wallets WHERE account_id=$1 AND currency=$2`, accountID, currency)
	assert.NoError(t, err)
	return balance
}

// --- Credit Tests ---
func TestWalletCredit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := uuid.New()
	insertAccount(t, db, accountID, "100001", "AAAA0001")

	writer := NewWalletWriteRepository(db)

	balance, err := writer.Credit(ctx, accountID, models.EZCOIN, 100)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, balance)
	assert.Equal(t, 100.0, getBalance(t, db, accountID, models.EZCOIN))

	balance, err = writer.Credit(ctx, accountID, models.EZCOIN, 50)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, balance)
	assert.Equal(t, 150.0, getBalance(t, db, accountID, models.EZCOIN))
}

// --- Debit Tests ---
func TestWalletDebit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := uuid.New()
	insertAccount(t, db, accountID, "100002", "AAAA0002")

	writer := NewWalletWriteRepository(db)

	// Balance 100, case priced 40: post-debit balance is 60.
	_, err := writer.Credit(ctx, accountID, models.EZCOIN, 100)
	assert.NoError(t, err)

	balance, err := writer.Debit(ctx, accountID, models.EZCOIN, 40)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, balance)
	assert.Equal(t, 60.0, getBalance(t, db, accountID, models.EZCOIN))

	// Balance 60 cannot cover 80; nothing changes.
	_, err = writer.Debit(ctx, accountID, models.EZCOIN, 80)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 60.0, getBalance(t, db, accountID, models.EZCOIN))

	// Exact drain to zero is allowed.
	balance, err = writer.Debit(ctx, accountID, models.EZCOIN, 60)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestWalletDebit_MissingWallet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := uuid.New()
	insertAccount(t, db, accountID, "100003", "AAAA0003")

	writer := NewWalletWriteRepository(db)

	_, err := writer.Debit(ctx, accountID, models.EZCOIN, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// --- Concurrency Tests ---
func TestWalletCreditConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := uuid.New()
	insertAccount(t, db, accountID, "100004", "AAAA0004")

	writer := NewWalletWriteRepository(db)

	const numGoroutines = 1000
	const amount = 1.0
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = writer.Credit(ctx, accountID, models.EZCOIN, amount)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(numGoroutines)*amount, getBalance(t, db, accountID, models.EZCOIN))
}

func TestWalletDebitConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := uuid.New()
	insertAccount(t, db, accountID, "100005", "AAAA0005")

	writer := NewWalletWriteRepository(db)

	// Fund with less than the goroutines try to take. The conditional
	// update rejects the overflow and the balance never goes negative.
	initial := 600.0
	_, err := writer.Credit(ctx, accountID, models.EZCOIN, initial)
	assert.NoError(t, err)

	const numGoroutines = 1000
	const amount = 1.0
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			if _, err := writer.Debit(ctx, accountID, models.EZCOIN, amount); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int(initial), succeeded)
	assert.Equal(t, 0.0, getBalance(t, db, accountID, models.EZCOIN))
}

// --- WalletReadRepository Tests ---
func TestWalletReadRepository_GetByAccountID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := uuid.New()
	insertAccount(t, db, accountID, "100006", "AAAA0006")

	walletsData := []struct {
		currency string
		balance  float64
	}{
		{models.EZCOIN, 100.0},
		{models.EZDROP, 5.0},
	}

	for _, w := range walletsData {
		_, err := db.Exec(`INSERT INTO wallets (account_id, currency, balance) VALUES ($1, $2, $3)`,
			accountID, w.currency, w.balance)
		assert.NoError(t, err)
	}

	reader := NewWalletReadRepository(db)

	t.Run("Get all balances for existing account", func(t *testing.T) {
		balances, err := reader.GetByAccountID(ctx, accountID)
		assert.NoError(t, err)
		assert.Len(t, balances, len(walletsData))

		for _, w := range walletsData {
			assert.Equal(t, w.balance, balances[w.currency])
		}
	})

	t.Run("Return empty map for unknown account", func(t *testing.T) {
		unknown := uuid.New()
		balances, err := reader.GetByAccountID(ctx, unknown)
		assert.NoError(t, err)
		assert.Empty(t, balances)
	})
}
