package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// Error variables
var (
	// ErrInsufficientFunds is returned when a debit exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for non-positive debits or negative credits.
	ErrInvalidAmount = errors.New("invalid amount")
)

// WalletWriter defines atomic balance mutations.
type WalletWriter interface {
	Credit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error)
	Debit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error)
}

// WalletReader defines balance reads.
type WalletReader interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (map[string]float64, error)
}

// TransactionWriter appends immutable ledger records.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService owns balance custody and transaction recording. It is
// the sole writer of balances; completed transactions are additionally
// published to Kafka best-effort.
type LedgerService struct {
	walletWriter WalletWriter
	walletReader WalletReader
	txnWriter    TransactionWriter
	kafkaWriter  KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	walletWriter WalletWriter,
	walletReader WalletReader,
	txnWriter TransactionWriter,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		walletWriter: walletWriter,
		walletReader: walletReader,
		txnWriter:    txnWriter,
		kafkaWriter:  kafkaWriter,
	}
}

// Debit atomically decreases a balance and returns the post-debit
// value. The balance check and the write are one step: concurrent
// debits against the same account can never drive it negative.
func (s *LedgerService) Debit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.walletWriter.Debit(ctx, accountID, currency, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("debit rejected", "account_id", accountID, "currency", currency, "amount", amount)
			return 0, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit", "account_id", accountID, "currency", currency, "amount", amount, "error", err)
		return 0, err
	}

	return balance, nil
}

// Credit atomically increases a balance and returns the post-credit value.
func (s *LedgerService) Credit(ctx context.Context, accountID uuid.UUID, currency string, amount float64) (float64, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.walletWriter.Credit(ctx, accountID, currency, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit", "account_id", accountID, "currency", currency, "amount", amount, "error", err)
		return 0, err
	}

	return balance, nil
}

// Balances returns all balances of an account as map[currency]balance.
func (s *LedgerService) Balances(ctx context.Context, accountID uuid.UUID) (map[string]float64, error) {
	balances, err := s.walletReader.GetByAccountID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get balances", "account_id", accountID, "error", err)
		return nil, err
	}
	return balances, nil
}

// Record appends one immutable transaction row. The caller sequences
// the call after the associated balance mutation has committed.
// Persistence faults are always surfaced, never dropped.
func (s *LedgerService) Record(ctx context.Context, accountID uuid.UUID, kind string, amount float64, currency, status string) (*models.TransactionDB, error) {
	txn := models.TransactionDB{
		TransactionID: uuid.New(),
		AccountID:     accountID,
		Kind:          kind,
		Amount:        amount,
		Currency:      currency,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.txnWriter.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to record transaction",
			"account_id", accountID, "kind", kind, "amount", amount, "currency", currency, "error", err)
		return nil, err
	}

	if status == models.TxStatusCompleted {
		s.publishTransaction(ctx, txn)
	}

	return &txn, nil
}

// publishTransaction publishes a transaction event to Kafka.
func (s *LedgerService) publishTransaction(ctx context.Context, txn models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		AccountID:     txn.AccountID.String(),
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Timestamp:     txn.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
