package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/jwt"
	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/services"
)

// OpenTokener defines only the methods needed by this handler.
type OpenTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CaseOpener runs the case-opening state machine.
type CaseOpener interface {
	OpenCase(ctx context.Context, accountID, caseID uuid.UUID) (*services.OpenResult, error)
}

// RewardPayload represents the reward minted by a case opening
// swagger:model RewardPayload
type RewardPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Rarity      string    `json:"rarity"`
	Value       float64   `json:"value"`
}

// OpenCaseResponse represents a successful case opening
// swagger:model OpenCaseResponse
type OpenCaseResponse struct {
	// Whether the case was opened
	// default: true
	Success bool `json:"success"`

	// The reward item minted for the account
	RewardItem RewardPayload `json:"reward_item"`

	// Post-debit balance in the case currency
	// default: 60.0
	NewBalance float64 `json:"new_balance"`
}

// OpenCaseErrorResponse represents an error response for case opening
// swagger:model OpenCaseErrorResponse
type OpenCaseErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewOpenCaseHandler returns an HTTP handler that opens a case for the
// authenticated account.
// @Summary Open case
// @Description Debits the case price, draws one weighted-random reward, mints it and records the transaction
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} handlers.OpenCaseResponse "Case opened"
// @Failure 400 {object} handlers.OpenCaseErrorResponse "Insufficient funds"
// @Failure 401 {object} handlers.OpenCaseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.OpenCaseErrorResponse "Account or case not found"
// @Failure 409 {object} handlers.OpenCaseErrorResponse "Case is not available"
// @Failure 500 {object} handlers.OpenCaseErrorResponse "Internal server error"
// @Router /cases/{id}/open [post]
// @Security BearerAuth
func NewOpenCaseHandler(
	svc CaseOpener,
	tokenGetter OpenTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Unauthorized"})
			return
		}

		caseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Case not found"})
			return
		}

		result, err := svc.OpenCase(ctx, claims.AccountID, caseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Account not found"})
			case errors.Is(err, services.ErrCaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Case not found"})
			case errors.Is(err, services.ErrCaseUnavailable):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Case is not available"})
			default:
				logger.Log.Errorw("failed to open case",
					"account_id", claims.AccountID, "case_id", caseID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(OpenCaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(OpenCaseResponse{
			Success: true,
			RewardItem: RewardPayload{
				ID:          result.Item.ItemID,
				Name:        result.Item.Name,
				Description: result.Item.Description,
				ImageURL:    result.Item.ImageURL,
				Rarity:      result.Item.Rarity,
				Value:       result.Item.Value,
			},
			NewBalance: result.NewBalance,
		})
	}
}
