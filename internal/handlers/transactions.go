package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/jwt"
	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionLister reads an account's transaction history.
type TransactionLister interface {
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.TransactionDB, error)
}

// TransactionsResponse represents the transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.TransactionDB `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for the history endpoint
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewTransactionsHandler returns an HTTP handler for the authenticated
// account's transaction history, newest first.
// @Summary List transactions
// @Description Returns the account's append-only transaction history
// @Tags account
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /account/transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(
	txns TransactionLister,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		history, err := txns.ListByAccountID(ctx, claims.AccountID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "account_id", claims.AccountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		if history == nil {
			history = []models.TransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: history})
	}
}
