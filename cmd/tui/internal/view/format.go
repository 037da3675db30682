package view

import (
	"context"
	"errors"
	"time"

	"github.com/advithialva/expenso/internal/client"
	"github.com/advithialva/expenso/internal/money"
)

const apiTimeout = 10 * time.Second

// FormatAmount renders cents as a decimal string, e.g. "-4.50".
func FormatAmount(c money.Cents) string {
	return c.String()
}

// APICtx returns a context with a standard timeout for API calls.
func APICtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}

// alertText turns a client failure into the user-facing alert line.
func alertText(err error) string {
	var apiErr *client.Error
	if !errors.As(err, &apiErr) {
		return "Error: something went wrong. Please try again."
	}

	switch apiErr.Kind {
	case client.KindNetwork:
		return "Error: failed to reach the server. Please check your connection."
	case client.KindRateLimited:
		return "Error: too many requests, please try again later."
	case client.KindNotFound:
		return "Error: transaction not found."
	case client.KindValidation:
		return "Error: " + apiErr.Message
	default:
		return "Error: something went wrong. Please try again."
	}
}
