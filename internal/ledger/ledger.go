package ledger

import (
	"errors"
	"time"

	"github.com/advithialva/expenso/internal/money"
)

// ErrNotFound is returned when a transaction id matches no stored row.
var ErrNotFound = errors.New("transaction not found")

// ValidationError reports a missing required field on create.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Transaction is a single ledger entry. The id is assigned by the
// database and never changes; rows are only ever created and deleted.
type Transaction struct {
	ID        int64
	UserID    string
	Title     string
	Amount    money.Cents
	Category  string
	CreatedAt time.Time // date precision
}

// Summary is the per-user aggregate view, derived on demand.
type Summary struct {
	Balance  money.Cents
	Income   money.Cents
	Expenses money.Cents
}
