package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/model"
)

func validAccount(username string) *model.Account {
	return &model.Account{
		Owner:        "Test Owner",
		Username:     username,
		PIN:          1234,
		InterestRate: decimal.RequireFromString("1.5"),
		Currency:     "USD",
		Locale:       "en-US",
	}
}

func invariants(errs []ValidationError) []int {
	var out []int
	for _, e := range errs {
		out = append(out, e.Invariant)
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate([]*model.Account{validAccount("to"), validAccount("tp")}))
}

func TestValidate_Invariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *model.Account)
		want   int
	}{
		{"empty owner", func(a *model.Account) { a.Owner = " " }, 1},
		{"zero pin", func(a *model.Account) { a.PIN = 0 }, 3},
		{"negative rate", func(a *model.Account) { a.InterestRate = decimal.NewFromInt(-1) }, 4},
		{"bad currency", func(a *model.Account) { a.Currency = "XYZW" }, 5},
		{"bad locale", func(a *model.Account) { a.Locale = "not a locale!" }, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAccount("to")
			tt.mutate(a)
			errs := Validate([]*model.Account{a})
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0].Invariant)
			assert.Contains(t, errs[0].Error(), "[to]")
		})
	}
}

func TestValidate_DuplicateUsername(t *testing.T) {
	errs := Validate([]*model.Account{validAccount("to"), validAccount("to")})
	assert.Equal(t, []int{2}, invariants(errs))
}
