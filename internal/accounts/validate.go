package accounts

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/bankist-dev/bankist/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Username    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Username, e.Description)
}

// Validate enforces 6 invariants on an account collection.
func Validate(accts []*model.Account) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(accts))

	for _, a := range accts {
		// Invariant 1: Owner present.
		if strings.TrimSpace(a.Owner) == "" {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Username:    a.Username,
				Description: "owner name is empty",
			})
		}

		// Invariant 2: Unique usernames.
		if seen[a.Username] {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Username:    a.Username,
				Description: "duplicate username",
			})
		}
		seen[a.Username] = true

		// Invariant 3: PIN set.
		if a.PIN <= 0 {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Username:    a.Username,
				Description: fmt.Sprintf("PIN must be positive, got %d", a.PIN),
			})
		}

		// Invariant 4: Non-negative interest rate.
		if a.InterestRate.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Username:    a.Username,
				Description: fmt.Sprintf("interest rate %s is negative", a.InterestRate),
			})
		}

		// Invariant 5: Known currency.
		if _, err := currency.ParseISO(a.Currency); err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Username:    a.Username,
				Description: fmt.Sprintf("unknown currency %q", a.Currency),
			})
		}

		// Invariant 6: Parseable locale.
		if _, err := language.Parse(a.Locale); err != nil {
			errs = append(errs, ValidationError{
				Invariant:   6,
				Username:    a.Username,
				Description: fmt.Sprintf("invalid locale %q", a.Locale),
			})
		}
	}

	return errs
}
