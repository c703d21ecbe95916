package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ezdrop/ezdrop-backend/internal/logger"
	"github.com/ezdrop/ezdrop-backend/internal/models"
)

// CaseLister lists purchasable cases.
type CaseLister interface {
	ActiveCases(ctx context.Context) ([]models.CaseDB, error)
}

// CaseSummary represents one purchasable case
// swagger:model CaseSummary
type CaseSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Rarity      string    `json:"rarity"`
}

// CasesErrorResponse represents an error response for the case listing
// swagger:model CasesErrorResponse
type CasesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListCasesHandler returns an HTTP handler listing active cases.
// @Summary List cases
// @Description Returns all purchasable cases in stable order
// @Tags cases
// @Produce json
// @Success 200 {array} handlers.CaseSummary "Active cases"
// @Failure 500 {object} handlers.CasesErrorResponse "Internal server error"
// @Router /cases [get]
func NewListCasesHandler(catalog CaseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases, err := catalog.ActiveCases(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list cases", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CasesErrorResponse{Error: "Internal server error"})
			return
		}

		summaries := make([]CaseSummary, 0, len(cases))
		for _, c := range cases {
			summaries = append(summaries, CaseSummary{
				ID:          c.CaseID,
				Name:        c.Name,
				Description: c.Description,
				ImageURL:    c.ImageURL,
				Price:       c.Price,
				Currency:    c.Currency,
				Rarity:      c.Rarity,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summaries)
	}
}
