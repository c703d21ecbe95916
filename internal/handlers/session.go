package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
	"github.com/ezdrop/ezdrop-backend/internal/services"
)

// Resolver defines the identity resolution the session handler needs.
type Resolver interface {
	Resolve(ctx context.Context, telegramID string, username, firstName, lastName, referredBy *string) (*models.AccountDB, string, error)
}

// BalanceReader reads all balances of an account.
type BalanceReader interface {
	Balances(ctx context.Context, accountID uuid.UUID) (map[string]float64, error)
}

// SessionRequest represents the JSON body for session creation
// swagger:model SessionRequest
type SessionRequest struct {
	// Chat-platform user id, numeric string
	// required: true
	// default: 123456789
	ExternalID string `json:"external_id"`

	// Username
	// default: john_doe
	Username *string `json:"username,omitempty"`

	// First name
	FirstName *string `json:"first_name,omitempty"`

	// Last name
	LastName *string `json:"last_name,omitempty"`

	// Referral code of the referring account
	ReferredBy *string `json:"referred_by,omitempty"`
}

// AccountPayload represents account fields returned to clients
// swagger:model AccountPayload
type AccountPayload struct {
	ID           uuid.UUID          `json:"id"`
	TelegramID   string             `json:"telegram_id"`
	Username     *string            `json:"username"`
	FirstName    *string            `json:"first_name"`
	LastName     *string            `json:"last_name"`
	Balances     map[string]float64 `json:"balances"`
	ReferralCode string             `json:"referral_code"`
	ReferredBy   *string            `json:"referred_by"`
	CreatedAt    string             `json:"created_at"`
	LastLogin    string             `json:"last_login"`
}

// SessionResponse represents a successful session creation response
// swagger:model SessionResponse
type SessionResponse struct {
	// Session token, bearer scheme
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Resolved account
	Account AccountPayload `json:"account"`
}

// SessionErrorResponse represents an error response for session creation
// swagger:model SessionErrorResponse
type SessionErrorResponse struct {
	// Error message
	// default: Invalid external id
	Error string `json:"error"`
}

// newAccountPayload zero-fills the internal currencies so clients
// always see both balances even before any wallet row exists.
func newAccountPayload(account *models.AccountDB, balances map[string]float64) AccountPayload {
	filled := map[string]float64{
		models.EZCOIN: 0,
		models.EZDROP: 0,
	}
	for currency, balance := range balances {
		filled[currency] = balance
	}

	return AccountPayload{
		ID:           account.AccountID,
		TelegramID:   account.TelegramID,
		Username:     account.Username,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Balances:     filled,
		ReferralCode: account.ReferralCode,
		ReferredBy:   account.ReferredBy,
		CreatedAt:    account.CreatedAt.UTC().Format(time.RFC3339),
		LastLogin:    account.LastLogin.UTC().Format(time.RFC3339),
	}
}

// NewSessionHandler returns an HTTP handler that resolves a
// chat-platform identity and issues a session token.
// @Summary Create session
// @Description Resolve a chat-platform identity assertion, creating the account on first sight, and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param sessionRequest body handlers.SessionRequest true "Session Request"
// @Success 200 {object} handlers.SessionResponse "Token and account returned"
// @Failure 400 {object} handlers.SessionErrorResponse "Malformed input"
// @Router /auth/session [post]
func NewSessionHandler(svc Resolver, balances BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SessionErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		account, token, err := svc.Resolve(ctx, req.ExternalID, req.Username, req.FirstName, req.LastName, req.ReferredBy)
		if err != nil {
			if errors.Is(err, services.ErrIdentityInvalid) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SessionErrorResponse{
					Error: "Invalid external id",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SessionErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		accountBalances, err := balances.Balances(ctx, account.AccountID)
		if err != nil {
			logger.Log.Errorw("failed to read balances", "account_id", account.AccountID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SessionErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SessionResponse{
			Token:   token,
			Account: newAccountPayload(account, accountBalances),
		})
	}
}
