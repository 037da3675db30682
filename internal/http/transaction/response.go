package transaction

import (
	"time"

	"github.com/advithialva/expenso/internal/ledger"
	"github.com/advithialva/expenso/internal/money"
)

type transactionResponse struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"user_id"`
	Title     string      `json:"title"`
	Amount    money.Cents `json:"amount"`
	Category  string      `json:"category"`
	CreatedAt string      `json:"created_at"`
}

type summaryResponse struct {
	Balance  money.Cents `json:"balance"`
	Income   money.Cents `json:"income"`
	Expenses money.Cents `json:"expenses"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Title:     tx.Title,
		Amount:    tx.Amount,
		Category:  tx.Category,
		CreatedAt: tx.CreatedAt.Format(time.DateOnly),
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toSummaryResponse(s *ledger.Summary) summaryResponse {
	return summaryResponse{
		Balance:  s.Balance,
		Income:   s.Income,
		Expenses: s.Expenses,
	}
}
