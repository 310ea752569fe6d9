package ledger

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports user input that is not a usable amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Amounts are plain decimals: an optional minus sign, at most
// MaxIntegerDigits significant integer digits and MaxFractionDigits decimals.
const (
	MaxIntegerDigits  = 15
	MaxFractionDigits = 2
)

var amountPattern = regexp.MustCompile(`^-?([0-9]+)(?:\.([0-9]+))?$`)

// ParseAmount parses a decimal amount typed by the user.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	return parsePlain(s)
}

// parsePlain accepts only plain notation within the digit limits. Exponent
// forms such as 1e900000000 never reach decimal.
func parsePlain(s string) (decimal.Decimal, error) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(strings.TrimLeft(m[1], "0")) > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q has more than %d integer digits", ErrInvalidAmount, s, MaxIntegerDigits)
	}
	if len(m[2]) > MaxFractionDigits {
		return decimal.Zero, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, MaxFractionDigits)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
