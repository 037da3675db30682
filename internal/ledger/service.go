package ledger

import (
	"context"

	"github.com/advithialva/expenso/internal/money"
)

// SumFilter selects which amounts a sum aggregates over.
type SumFilter int

const (
	SumAll      SumFilter = iota // every row for the user
	SumIncome                    // amount > 0
	SumExpenses                  // amount < 0
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	SumAmounts(ctx context.Context, userID string, filter SumFilter) (money.Cents, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID   string
	Title    string
	Amount   money.Cents
	Category string
}

// Create validates the params and persists a new transaction. The store
// fills in the assigned id and created_at. A zero amount is valid;
// absence of the amount field is rejected at the HTTP boundary.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	switch {
	case params.UserID == "":
		return nil, &ValidationError{Field: "user_id"}
	case params.Title == "":
		return nil, &ValidationError{Field: "title"}
	case params.Category == "":
		return nil, &ValidationError{Field: "category"}
	}

	tx := &Transaction{
		UserID:   params.UserID,
		Title:    params.Title,
		Amount:   params.Amount,
		Category: params.Category,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns the user's transactions, most recent date first. Rows
// sharing a date come back in storage scan order. An unknown user yields
// an empty slice, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}

// Delete removes the transaction with the given id. Returns ErrNotFound
// when no row matched, including repeated deletes of the same id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// Summarize computes balance, income and expenses as three independent
// aggregate queries. They are not wrapped in one database transaction,
// so a write landing between them can leave income + expenses slightly
// off balance for that read.
func (s *Service) Summarize(ctx context.Context, userID string) (*Summary, error) {
	balance, err := s.repo.SumAmounts(ctx, userID, SumAll)
	if err != nil {
		return nil, err
	}

	income, err := s.repo.SumAmounts(ctx, userID, SumIncome)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.SumAmounts(ctx, userID, SumExpenses)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Balance:  balance,
		Income:   income,
		Expenses: expenses,
	}, nil
}
