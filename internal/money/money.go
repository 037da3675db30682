// Package money holds monetary amounts as signed cents to avoid
// floating-point drift. Positive amounts are income, negative expense.
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Cents is a fixed-point amount with two fractional digits.
type Cents int64

// Parse converts a decimal string such as "12.34", "-4.5" or "1000" into
// cents. A third fractional digit is rounded half-up; anything that is not
// an optionally signed decimal number is rejected.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false

	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if s == "" {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}

	intPart := parts[0]

	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}

	if intPart == "" {
		intPart = "0"
	}

	if fracPart == "" && len(parts) == 2 {
		return 0, ErrInvalidAmount
	}

	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var frac int64

	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10

		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')

			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}

	cents := iv*100 + frac
	if negative {
		cents = -cents
	}

	return Cents(cents), nil
}

// String renders the amount as a decimal with exactly two fractional
// digits, e.g. -450 cents -> "-4.50".
func (c Cents) String() string {
	v := int64(c)

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	return sign + strconv.FormatInt(v/100, 10) + "." + pad2(v%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}

	return strconv.FormatInt(n, 10)
}

// MarshalJSON encodes the amount as a plain JSON number with two
// fractional digits.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts JSON numbers with up to two fractional digits.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
