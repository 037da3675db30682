package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	expensoHttp "github.com/advithialva/expenso/internal/http"
	txHandler "github.com/advithialva/expenso/internal/http/transaction"
	"github.com/advithialva/expenso/internal/ledger"
	"github.com/advithialva/expenso/internal/ratelimit"
)

type staticLimiter struct {
	allowed bool
	err     error
}

func (l staticLimiter) Check(context.Context) (bool, error) { return l.allowed, l.err }

func newRouter(t *testing.T, limiter ratelimit.Limiter) (*ledger.MockRepository, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	handler := txHandler.NewHandler(ledger.NewService(repo))
	srv := httptest.NewServer(expensoHttp.New(limiter, handler))
	t.Cleanup(srv.Close)

	return repo, srv
}

func TestRouter_AllowedRequestReachesHandler(t *testing.T) {
	repo, srv := newRouter(t, staticLimiter{allowed: true})

	repo.EXPECT().
		ListTransactions(gomock.Any(), "u1").
		Return([]*ledger.Transaction{{ID: 1, UserID: "u1", CreatedAt: time.Now()}}, nil)

	resp, err := http.Get(srv.URL + "/api/transactions/u1")
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RateLimitedBeforeHandler(t *testing.T) {
	// No expectations on the repository: a rejected request must not
	// touch the ledger service at all.
	_, srv := newRouter(t, staticLimiter{allowed: false})

	resp, err := http.Get(srv.URL + "/api/transactions/u1")
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Too many requests, please try again later.", body["message"])
}

func TestRouter_LimiterFailureDoesNotFailOpen(t *testing.T) {
	_, srv := newRouter(t, staticLimiter{err: errors.New("backend unreachable")})

	resp, err := http.Get(srv.URL + "/api/transactions/u1")
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRouter_HealthSkipsAdmissionControl(t *testing.T) {
	_, srv := newRouter(t, staticLimiter{allowed: false})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
