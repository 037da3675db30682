package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/advithialva/expenso/internal/ledger"
	"github.com/advithialva/expenso/internal/money"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, user_id, title, amount_cents, category, created_at
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var cents int64

	if err := s.Scan(&tx.ID, &tx.UserID, &tx.Title, &cents, &tx.Category, &tx.CreatedAt); err != nil {
		return nil, err
	}

	tx.Amount = money.Cents(cents)

	return &tx, nil
}

// Amounts live in a DECIMAL(10,2) column; they cross this boundary as
// cents, hence the *100 / /100 casts in every statement.
const selectTransactionColumns = `
	id, user_id, title, (amount * 100)::bigint AS amount_cents, category, created_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, title, amount, category)
		VALUES ($1, $2, $3::numeric / 100, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.Title,
		int64(tx.Amount),
		tx.Category,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, userID string) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	txs := []*ledger.Transaction{}

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	query := `
		DELETE FROM transactions
		WHERE id = $1
		RETURNING id
	`

	var deleted int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(&deleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return ledger.ErrNotFound
		}

		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) SumAmounts(ctx context.Context, userID string, filter ledger.SumFilter) (money.Cents, error) {
	query := `
		SELECT (COALESCE(SUM(amount), 0) * 100)::bigint
		FROM transactions
		WHERE user_id = $1
	`

	switch filter {
	case ledger.SumIncome:
		query += " AND amount > 0"
	case ledger.SumExpenses:
		query += " AND amount < 0"
	}

	var cents int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&cents); err != nil {
		return 0, fmt.Errorf("summing amounts: %w", err)
	}

	return money.Cents(cents), nil
}
