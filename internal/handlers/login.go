package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, upiID, pin string) (string, error)
}

// LoginRequest represents the JSON body for opening a session
// swagger:model LoginRequest
type LoginRequest struct {
	// UPI address
	// required: true
	// example: rahul@bharatpay
	UPIID string `json:"upi_id"`

	// 4-digit PIN
	// required: true
	// example: 1234
	PIN string `json:"pin"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Session token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid UPI address or PIN
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler that opens a session.
// @Summary Open a session
// @Description Verify the UPI address and PIN and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid UPI address or PIN"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.UPIID, req.PIN)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid UPI address or PIN"})
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{Token: token})
	}
}
