package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advithialva/expenso/internal/client"
	"github.com/advithialva/expenso/internal/money"
)

func TestListTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/transactions/u1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 2, "user_id": "u1", "title": "Coffee", "amount": -4.50, "category": "Food", "created_at": "2025-06-12"},
			{"id": 1, "user_id": "u1", "title": "Salary", "amount": 1000.00, "category": "Job", "created_at": "2025-06-12"},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, srv.Client())

	txs, err := c.ListTransactions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(2), txs[0].ID)
	assert.Equal(t, money.Cents(-450), txs[0].Amount)
	assert.Equal(t, money.Cents(100000), txs[1].Amount)
}

func TestGetSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/summary/u1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"balance": 995.50, "income": 1000.00, "expenses": -4.50,
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, srv.Client())

	summary, err := c.GetSummary(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, money.Cents(99550), summary.Balance)
	assert.Equal(t, money.Cents(100000), summary.Income)
	assert.Equal(t, money.Cents(-450), summary.Expenses)
}

func TestCreateTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.Equal(t, -4.5, body["amount"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 3, "user_id": "u1", "title": "Coffee", "amount": -4.50, "category": "Food", "created_at": "2025-06-12",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, srv.Client())

	tx, err := c.CreateTransaction(context.Background(), client.CreateParams{
		UserID:   "u1",
		Title:    "Coffee",
		Amount:   money.Cents(-450),
		Category: "Food",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), tx.ID)
}

func TestErrorKinds(t *testing.T) {
	type testCase struct {
		name     string
		status   int
		message  string
		wantKind client.Kind
	}

	tests := []testCase{
		{name: "Validation", status: http.StatusBadRequest, message: "All fields are required", wantKind: client.KindValidation},
		{name: "NotFound", status: http.StatusNotFound, message: "Transaction not found", wantKind: client.KindNotFound},
		{name: "RateLimited", status: http.StatusTooManyRequests, message: "Too many requests, please try again later.", wantKind: client.KindRateLimited},
		{name: "Internal", status: http.StatusInternalServerError, message: "Internal Server Error", wantKind: client.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": tt.message})
			}))
			defer srv.Close()

			c := client.New(srv.URL, srv.Client())

			_, err := c.ListTransactions(context.Background(), "u1")
			require.Error(t, err)

			var apiErr *client.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestNetworkErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := client.New(srv.URL, nil)

	err := c.DeleteTransaction(context.Background(), 1)
	require.Error(t, err)

	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindNetwork, apiErr.Kind)
}
