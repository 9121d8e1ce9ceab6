package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := NewBalanceHandler(env.payments)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balance", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BalanceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	require.Len(t, resp.Accounts, 3)
	assert.InDelta(t, 82001.25, resp.Total, 0.001)

	byID := make(map[string]AccountPayload, len(resp.Accounts))
	for _, acc := range resp.Accounts {
		byID[acc.ID] = acc
	}
	assert.InDelta(t, 45750.50, byID["acc1"].Balance, 0.001)
	assert.InDelta(t, 23400.00, byID["acc2"].Balance, 0.001)
	assert.InDelta(t, 12850.75, byID["acc3"].Balance, 0.001)
	assert.True(t, byID["acc1"].Primary)
}
