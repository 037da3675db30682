// Package client provides an HTTP client for the Expenso ledger API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/advithialva/expenso/internal/money"
)

// Kind tags an API failure so callers can switch on it instead of
// probing response shapes.
type Kind int

const (
	KindNetwork     Kind = iota // transport failure, no response
	KindValidation              // 400
	KindNotFound                // 404
	KindRateLimited             // 429
	KindInternal                // everything else
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// Error is the failure type returned by every client method.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
}

// Transaction mirrors the API's transaction representation.
type Transaction struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"user_id"`
	Title     string      `json:"title"`
	Amount    money.Cents `json:"amount"`
	Category  string      `json:"category"`
	CreatedAt string      `json:"created_at"`
}

// Summary mirrors the API's per-user aggregate.
type Summary struct {
	Balance  money.Cents `json:"balance"`
	Income   money.Cents `json:"income"`
	Expenses money.Cents `json:"expenses"`
}

// CreateParams is the body of a create request.
type CreateParams struct {
	UserID   string      `json:"user_id"`
	Title    string      `json:"title"`
	Amount   money.Cents `json:"amount"`
	Category string      `json:"category"`
}

// Client communicates with the Expenso ledger API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListTransactions fetches the user's transactions, most recent first.
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/transactions/"+userID, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var txs []Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, &Error{Kind: KindInternal, Message: "decoding transactions response: " + err.Error()}
	}

	return txs, nil
}

// GetSummary fetches the user's balance/income/expenses aggregate.
func (c *Client) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/transactions/summary/"+userID, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var summary Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, &Error{Kind: KindInternal, Message: "decoding summary response: " + err.Error()}
	}

	return &summary, nil
}

// CreateTransaction creates a new transaction and returns the stored row.
func (c *Client) CreateTransaction(ctx context.Context, params CreateParams) (*Transaction, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "marshaling create request: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, errorFromResponse(resp)
	}

	var tx Transaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, &Error{Kind: KindInternal, Message: "decoding create response: " + err.Error()}
	}

	return &tx, nil
}

// DeleteTransaction deletes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	url := c.baseURL + "/api/transactions/" + strconv.FormatInt(id, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}

	return nil
}

func errorFromResponse(resp *http.Response) *Error {
	kind := KindInternal

	switch resp.StatusCode {
	case http.StatusBadRequest:
		kind = KindValidation
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusTooManyRequests:
		kind = KindRateLimited
	}

	message := "unexpected status"

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		message = body.Message
	}

	return &Error{Kind: kind, Status: resp.StatusCode, Message: message}
}
