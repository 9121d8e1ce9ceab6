package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := NewHistoryHandler(env.payments)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "all_implicit", query: "", wantCount: 4},
		{name: "all_explicit", query: "?filter=all", wantCount: 4},
		{name: "sent", query: "?filter=sent", wantCount: 2},
		{name: "received", query: "?filter=received", wantCount: 2},
		{name: "self", query: "?filter=self", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp HistoryResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Transactions, tt.wantCount)

			// Newest first.
			for i := 1; i < len(resp.Transactions); i++ {
				assert.False(t, resp.Transactions[i].Timestamp.After(resp.Transactions[i-1].Timestamp))
			}
		})
	}
}

func TestHistoryHandler_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)
	handler := NewHistoryHandler(env.payments)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?filter=bogus", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp HistoryErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid filter", resp.Error)
}

func TestGroupedHistoryHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGroupedHistoryHandler(env.payments)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/grouped", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GroupedHistoryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	require.NotEmpty(t, resp.Groups)
	total := 0
	for _, group := range resp.Groups {
		assert.NotEmpty(t, group.Label)
		assert.NotEmpty(t, group.Transactions)
		total += len(group.Transactions)
	}
	// Grouping only buckets, it never drops or duplicates entries.
	assert.Equal(t, 4, total)
}

func TestGroupedHistoryHandler_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGroupedHistoryHandler(env.payments)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/grouped?filter=bogus", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecentHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := NewRecentHandler(env.payments)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "default_limit", query: "", wantCount: 4},
		{name: "limit_two", query: "?limit=2", wantCount: 2},
		{name: "limit_above_size", query: "?limit=10", wantCount: 4},
		{name: "limit_zero", query: "?limit=0", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/recent"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp RecentResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Transactions, tt.wantCount)
		})
	}
}

func TestRecentHandler_InvalidLimit(t *testing.T) {
	env := newTestEnv(t)
	handler := NewRecentHandler(env.payments)

	for _, query := range []string{"?limit=abc", "?limit=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/recent"+query, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
