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

// ItemsTokener defines only the methods needed by this handler.
type ItemsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ItemLister reads an account's owned-item inventory.
type ItemLister interface {
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.OwnedItemView, error)
}

// ItemsResponse represents the owned-item inventory
// swagger:model ItemsResponse
type ItemsResponse struct {
	Items []models.OwnedItemView `json:"items"`
}

// ItemsErrorResponse represents an error response for the inventory endpoint
// swagger:model ItemsErrorResponse
type ItemsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewItemsHandler returns an HTTP handler for the authenticated
// account's inventory, newest first.
// @Summary List owned items
// @Description Returns the account's minted reward items
// @Tags account
// @Produce json
// @Success 200 {object} handlers.ItemsResponse "Owned items"
// @Failure 401 {object} handlers.ItemsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ItemsErrorResponse "Internal server error"
// @Router /account/items [get]
// @Security BearerAuth
func NewItemsHandler(
	items ItemLister,
	tokenGetter ItemsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ItemsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ItemsErrorResponse{Error: "Unauthorized"})
			return
		}

		inventory, err := items.ListByAccountID(ctx, claims.AccountID)
		if err != nil {
			logger.Log.Errorw("failed to list items", "account_id", claims.AccountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemsErrorResponse{Error: "Internal server error"})
			return
		}

		if inventory == nil {
			inventory = []models.OwnedItemView{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ItemsResponse{Items: inventory})
	}
}
