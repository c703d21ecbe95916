package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction kinds.
const (
	TxKindDeposit  = "deposit"
	TxKindWithdraw = "withdraw"
	TxKindCaseOpen = "case_open"
	TxKindGameWin  = "game_win"
	TxKindGameLoss = "game_loss"
)

// Transaction statuses. A pending row may transition once to completed
// or failed and is frozen afterwards.
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// TransactionDB is an append-only ledger record. Completed rows per
// account and currency must sum to that account's current balance.
type TransactionDB struct {
	TransactionID uuid.UUID `json:"id" db:"transaction_id"`
	AccountID     uuid.UUID `json:"account_id" db:"account_id"`
	Kind          string    `json:"kind" db:"kind"`
	Amount        float64   `json:"amount" db:"amount"` // Signed: debits negative, credits positive
	Currency      string    `json:"currency" db:"currency"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TransactionEvent is the message published to Kafka for every
// completed transaction.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier of the transaction
	AccountID     string  `json:"account_id"`     // Account the transaction belongs to
	Kind          string  `json:"kind"`           // deposit, withdraw, case_open, game_win, game_loss
	Amount        float64 `json:"amount"`         // Signed amount
	Currency      string  `json:"currency"`       // Currency code
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp in seconds
}
