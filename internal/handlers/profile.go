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

// ProfileTokener defines only the methods needed by this handler.
type ProfileTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountGetter looks up accounts by internal id.
type AccountGetter interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// ProfileResponse represents a successful profile response
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Account fields including balances and referral code
	Account AccountPayload `json:"account"`
}

// ProfileErrorResponse represents an error response for the profile endpoint
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler for fetching the
// authenticated account's profile.
// @Summary Get account profile
// @Description Returns account fields including balances and referral code
// @Tags account
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Account profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "Account not found"
// @Router /account/profile [get]
// @Security BearerAuth
func NewProfileHandler(
	accounts AccountGetter,
	balances BalanceReader,
	tokenGetter ProfileTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		account, err := accounts.GetByID(ctx, claims.AccountID)
		if err != nil {
			logger.Log.Errorw("failed to get account", "account_id", claims.AccountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}
		if account == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Account not found"})
			return
		}

		accountBalances, err := balances.Balances(ctx, account.AccountID)
		if err != nil {
			logger.Log.Errorw("failed to read balances", "account_id", account.AccountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			Account: newAccountPayload(account, accountBalances),
		})
	}
}
