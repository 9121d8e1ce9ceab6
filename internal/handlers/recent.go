package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// defaultRecentLimit matches the home-screen widget.
const defaultRecentLimit = 4

// RecentReader defines the interface that the coordinator must implement.
type RecentReader interface {
	Recent(n int) []models.Transaction
}

// RecentResponse represents the most recent transactions
// swagger:model RecentResponse
type RecentResponse struct {
	// Transactions, newest first
	Transactions []TransactionPayload `json:"transactions"`
}

// RecentErrorResponse represents an error response for the recent view
// swagger:model RecentErrorResponse
type RecentErrorResponse struct {
	// Error message
	// example: Invalid limit
	Error string `json:"error"`
}

// NewRecentHandler returns an HTTP handler for the recent-transactions summary.
// @Summary Recent transactions
// @Description List the most recent transactions for the summary view.
// @Tags transactions
// @Produce json
// @Param limit query int false "Number of transactions (default 4)"
// @Success 200 {object} handlers.RecentResponse "Recent transactions returned"
// @Failure 400 {object} handlers.RecentErrorResponse "Invalid limit"
// @Failure 401 "Unauthorized"
// @Router /transactions/recent [get]
// @Security BearerAuth
func NewRecentHandler(svc RecentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RecentErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = n
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RecentResponse{
			Transactions: newTransactionPayloads(svc.Recent(limit)),
		})
	}
}
