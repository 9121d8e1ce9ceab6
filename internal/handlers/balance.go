package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatpay/upi-wallet/internal/models"
)

// BalanceReader defines the interface that the coordinator must implement.
type BalanceReader interface {
	AccountBalances() []models.Account
	TotalBalance() int64
}

// BalanceResponse represents the balances of all linked accounts
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Linked accounts with current balances
	Accounts []AccountPayload `json:"accounts"`

	// Sum of all balances, in rupees
	// example: 82001.25
	Total float64 `json:"total"`
}

// NewBalanceHandler returns an HTTP handler for the balance view.
// @Summary Account balances
// @Description List all linked accounts with their current balances and the total.
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Balances returned"
// @Failure 401 "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Accounts: newAccountPayloads(svc.AccountBalances()),
			Total:    models.ToRupees(svc.TotalBalance()),
		})
	}
}
