package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bharatpay/upi-wallet/internal/models"
	"github.com/bharatpay/upi-wallet/internal/txlog"
)

// HistoryReader defines the interface that the coordinator must implement.
type HistoryReader interface {
	History(direction models.Direction) []models.Transaction
	HistoryGrouped(direction models.Direction) []txlog.DateGroup
}

// HistoryResponse represents the flat transaction history
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Transactions, newest first
	Transactions []TransactionPayload `json:"transactions"`
}

// DateGroupPayload is one calendar-date bucket of the grouped history
// swagger:model DateGroupPayload
type DateGroupPayload struct {
	// Date label
	// example: 31 August 2026
	Label string `json:"label"`

	// Transactions of that date, newest first
	Transactions []TransactionPayload `json:"transactions"`
}

// GroupedHistoryResponse represents the date-grouped transaction history
// swagger:model GroupedHistoryResponse
type GroupedHistoryResponse struct {
	// Date buckets, newest first
	Groups []DateGroupPayload `json:"groups"`
}

// HistoryErrorResponse represents an error response for history queries
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Invalid filter
	Error string `json:"error"`
}

// parseFilter maps the filter query parameter to a direction.
// Absent or "all" means no filtering.
func parseFilter(r *http.Request) (models.Direction, bool) {
	switch r.URL.Query().Get("filter") {
	case "", "all":
		return "", true
	case "sent":
		return models.DirectionSent, true
	case "received":
		return models.DirectionReceived, true
	case "self":
		return models.DirectionSelf, true
	}
	return "", false
}

// NewHistoryHandler returns an HTTP handler for the flat history view.
// @Summary Transaction history
// @Description List logged transactions, newest first, optionally filtered by direction.
// @Tags transactions
// @Produce json
// @Param filter query string false "all | sent | received | self"
// @Success 200 {object} handlers.HistoryResponse "History returned"
// @Failure 400 {object} handlers.HistoryErrorResponse "Invalid filter"
// @Failure 401 "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		direction, ok := parseFilter(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid filter"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{
			Transactions: newTransactionPayloads(svc.History(direction)),
		})
	}
}

// NewGroupedHistoryHandler returns an HTTP handler for the date-grouped history view.
// @Summary Grouped transaction history
// @Description List logged transactions bucketed by calendar date, newest first within each bucket.
// @Tags transactions
// @Produce json
// @Param filter query string false "all | sent | received | self"
// @Success 200 {object} handlers.GroupedHistoryResponse "Grouped history returned"
// @Failure 400 {object} handlers.HistoryErrorResponse "Invalid filter"
// @Failure 401 "Unauthorized"
// @Router /transactions/grouped [get]
// @Security BearerAuth
func NewGroupedHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		direction, ok := parseFilter(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid filter"})
			return
		}

		groups := svc.HistoryGrouped(direction)
		payload := make([]DateGroupPayload, len(groups))
		for i, group := range groups {
			payload[i] = DateGroupPayload{
				Label:        group.Label,
				Transactions: newTransactionPayloads(group.Transactions),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GroupedHistoryResponse{Groups: payload})
	}
}
