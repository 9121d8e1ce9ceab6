package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bharatpay/upi-wallet/internal/jwt"
	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/models"
	"github.com/bharatpay/upi-wallet/internal/services"
)

// TransferTokener defines only the methods needed by this handler.
type TransferTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SelfTransferrer defines the interface that the coordinator must implement.
type SelfTransferrer interface {
	SelfTransfer(ctx context.Context, fromID, toID string, amount int64, pin string) (models.Transaction, int64, int64, error)
}

// TransferRequest represents the JSON body for a self-transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Source account id
	// required: true
	// example: acc1
	FromAccountID string `json:"from_account_id"`

	// Destination account id
	// required: true
	// example: acc2
	ToAccountID string `json:"to_account_id"`

	// Amount in rupees
	// required: true
	// example: 1000.0
	Amount float64 `json:"amount"`

	// 4-digit PIN authorizing the transfer
	// required: true
	PIN string `json:"pin"`
}

// TransferResponse represents a committed self-transfer
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// example: Transfer successful
	Message string `json:"message"`

	// The committed transaction
	Transaction TransactionPayload `json:"transaction"`

	// New balance of the source account, in rupees
	FromBalance float64 `json:"from_balance"`

	// New balance of the destination account, in rupees
	ToBalance float64 `json:"to_balance"`
}

// TransferErrorResponse represents an error response for a self-transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: Insufficient balance
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler for transfers between own accounts.
// @Summary Transfer between own accounts
// @Description Move funds between two linked accounts. Requires the PIN. The transfer is logged with direction "self".
// @Tags payments
// @Accept json
// @Produce json
// @Param transferRequest body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer committed"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized or incorrect PIN"
// @Failure 404 {object} handlers.TransferErrorResponse "Account not found"
// @Router /transfers [post]
// @Security BearerAuth
func NewTransferHandler(svc SelfTransferrer, tokenGetter TransferTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "invalid request body"})
			return
		}

		if req.FromAccountID == "" || req.ToAccountID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Please select both accounts"})
			return
		}

		txn, fromBalance, toBalance, err := svc.SelfTransfer(ctx, req.FromAccountID, req.ToAccountID, models.ToPaise(req.Amount), req.PIN)
		if err != nil {
			writeTransferError(w, claims, req, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{
			Message:     "Transfer successful",
			Transaction: newTransactionPayload(txn),
			FromBalance: models.ToRupees(fromBalance),
			ToBalance:   models.ToRupees(toBalance),
		})
	}
}

func writeTransferError(w http.ResponseWriter, claims *jwt.Claims, req TransferRequest, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Please enter a valid amount"})
	case errors.Is(err, services.ErrSameAccount):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Select a different destination account"})
	case errors.Is(err, services.ErrAccountNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Account not found"})
	case errors.Is(err, services.ErrInsufficientFunds):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Insufficient balance"})
	case errors.Is(err, services.ErrBadCredential):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Incorrect PIN. Please try again."})
	default:
		logger.Log.Errorw("self-transfer failed",
			"user_id", claims.UserID,
			"from", req.FromAccountID,
			"to", req.ToAccountID,
			"error", err,
		)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
	}
}
