package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferHandler_Success(t *testing.T) {
	env := newTestEnv(t)
	handler := NewTransferHandler(env.payments, env.tokenSvc)

	body := `{"from_account_id": "acc1", "to_account_id": "acc2", "amount": 1000.0, "pin": "1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewBufferString(body))
	req.Header.Set("Authorization", authHeader(t, env))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TransferResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Transfer successful", resp.Message)
	assert.InDelta(t, 44750.50, resp.FromBalance, 0.001)
	assert.InDelta(t, 24400.00, resp.ToBalance, 0.001)
	assert.Equal(t, "self", resp.Transaction.Direction)
	assert.Equal(t, "State Bank of India", resp.Transaction.SenderName)
	assert.Equal(t, "HDFC Bank", resp.Transaction.ReceiverName)
}

func TestTransferHandler_Errors(t *testing.T) {
	env := newTestEnv(t)
	handler := NewTransferHandler(env.payments, env.tokenSvc)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "bad_body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "missing_accounts",
			body:       `{"amount": 100, "pin": "1234"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Please select both accounts",
		},
		{
			name:       "same_account",
			body:       `{"from_account_id": "acc1", "to_account_id": "acc1", "amount": 100, "pin": "1234"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Select a different destination account",
		},
		{
			name:       "unknown_account",
			body:       `{"from_account_id": "acc1", "to_account_id": "acc9", "amount": 100, "pin": "1234"}`,
			wantStatus: http.StatusNotFound,
			wantError:  "Account not found",
		},
		{
			name:       "negative_amount",
			body:       `{"from_account_id": "acc1", "to_account_id": "acc2", "amount": -5, "pin": "1234"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Please enter a valid amount",
		},
		{
			name:       "insufficient_funds",
			body:       `{"from_account_id": "acc3", "to_account_id": "acc1", "amount": 99999, "pin": "1234"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Insufficient balance",
		},
		{
			name:       "wrong_pin",
			body:       `{"from_account_id": "acc1", "to_account_id": "acc2", "amount": 100, "pin": "0000"}`,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Incorrect PIN. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewBufferString(tt.body))
			req.Header.Set("Authorization", authHeader(t, env))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp TransferErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestTransferHandler_NoToken(t *testing.T) {
	env := newTestEnv(t)
	handler := NewTransferHandler(env.payments, env.tokenSvc)

	body := `{"from_account_id": "acc1", "to_account_id": "acc2", "amount": 100, "pin": "1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
