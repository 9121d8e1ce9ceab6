package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bharatpay/upi-wallet/internal/jwt"
	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/models"
	"github.com/bharatpay/upi-wallet/internal/services"
)

// PayTokener defines only the methods needed by this handler.
type PayTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PaymentSender defines the interface that the coordinator must implement.
type PaymentSender interface {
	PayOut(ctx context.Context, receiverUPI, receiverName string, amount int64, note, pin string) (models.Transaction, int64, error)
}

// PayRequest represents the JSON body for paying an external payee
// swagger:model PayRequest
type PayRequest struct {
	// Receiver UPI address
	// required: true
	// example: priya@upi
	ReceiverUPI string `json:"receiver_upi"`

	// Receiver display name; derived from the address when empty (scan flow)
	// example: Priya Singh
	ReceiverName string `json:"receiver_name"`

	// Amount in rupees
	// required: true
	// example: 2500.0
	Amount float64 `json:"amount"`

	// Optional note, at most 50 characters
	// example: Dinner bill split
	Note string `json:"note"`

	// 4-digit PIN authorizing the payment
	// required: true
	PIN string `json:"pin"`
}

// PayResponse represents a committed pay-out
// swagger:model PayResponse
type PayResponse struct {
	// Success message
	// example: Payment successful
	Message string `json:"message"`

	// The committed transaction
	Transaction TransactionPayload `json:"transaction"`

	// New balance of the primary account, in rupees
	// example: 43250.50
	NewBalance float64 `json:"new_balance"`
}

// PayErrorResponse represents an error response for a pay-out
// swagger:model PayErrorResponse
type PayErrorResponse struct {
	// Error message
	// example: Insufficient balance
	Error string `json:"error"`
}

// receiverDisplayName falls back to a name derived from the UPI address,
// the way the scan flow shows unknown payees.
func receiverDisplayName(req PayRequest) string {
	if req.ReceiverName != "" {
		return req.ReceiverName
	}
	local := strings.SplitN(req.ReceiverUPI, "@", 2)[0]
	words := strings.FieldsFunc(local, func(r rune) bool { return r == '.' || r == '_' })
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// NewPayHandler returns an HTTP handler for paying a contact or scanned payee.
// @Summary Pay an external payee
// @Description Debit the primary account and record a sent transaction. Requires the PIN.
// @Tags payments
// @Accept json
// @Produce json
// @Param payRequest body handlers.PayRequest true "Pay Request"
// @Success 200 {object} handlers.PayResponse "Payment committed"
// @Failure 400 {object} handlers.PayErrorResponse "Invalid request"
// @Failure 401 {object} handlers.PayErrorResponse "Unauthorized or incorrect PIN"
// @Router /payments [post]
// @Security BearerAuth
func NewPayHandler(svc PaymentSender, tokenGetter PayTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PayErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PayErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PayErrorResponse{Error: "invalid request body"})
			return
		}

		if req.ReceiverUPI == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PayErrorResponse{Error: "Receiver UPI address is required"})
			return
		}

		txn, newBalance, err := svc.PayOut(ctx, req.ReceiverUPI, receiverDisplayName(req), models.ToPaise(req.Amount), req.Note, req.PIN)
		if err != nil {
			writePayError(w, claims, req, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PayResponse{
			Message:     "Payment successful",
			Transaction: newTransactionPayload(txn),
			NewBalance:  models.ToRupees(newBalance),
		})
	}
}

func writePayError(w http.ResponseWriter, claims *jwt.Claims, req PayRequest, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "Please enter a valid amount up to 1,00,000"})
	case errors.Is(err, services.ErrNoteTooLong):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "Note is too long"})
	case errors.Is(err, services.ErrSelfPayment):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "Cannot pay to yourself"})
	case errors.Is(err, services.ErrNoPrimaryAccount):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "No bank account linked"})
	case errors.Is(err, services.ErrInsufficientFunds):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "Insufficient balance"})
	case errors.Is(err, services.ErrBadCredential):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "Incorrect PIN. Please try again."})
	default:
		logger.Log.Errorw("pay-out failed",
			"user_id", claims.UserID,
			"receiver", req.ReceiverUPI,
			"error", err,
		)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(PayErrorResponse{Error: "Internal server error"})
	}
}
