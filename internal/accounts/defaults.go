package accounts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/id"
	"github.com/bankist-dev/bankist/internal/model"
)

type seedMovement struct {
	amount string
	date   string // RFC 3339 with milliseconds
}

type seedAccount struct {
	owner    string
	pin      int
	rate     string
	currency string
	locale   string
	moves    []seedMovement
}

var seed = []seedAccount{
	{
		owner:    "Afonso Marques",
		pin:      1111,
		rate:     "1.2",
		currency: "EUR",
		locale:   "pt-PT",
		moves: []seedMovement{
			{"200", "2019-11-18T21:31:17.178Z"},
			{"455.23", "2019-12-23T07:42:02.383Z"},
			{"-306.5", "2020-01-28T09:15:04.904Z"},
			{"25000", "2020-04-01T10:17:24.185Z"},
			{"-642.21", "2022-10-20T17:01:17.194Z"},
			{"-133.9", "2022-10-22T23:36:17.929Z"},
			{"79.97", "2022-10-24T10:51:36.790Z"},
			{"1300", "2022-10-25T22:10:36.790Z"},
		},
	},
	{
		owner:    "Jessica Davis",
		pin:      2222,
		rate:     "1.5",
		currency: "USD",
		locale:   "en-US",
		moves: []seedMovement{
			{"5000", "2019-11-01T13:15:33.035Z"},
			{"3400", "2019-11-30T09:48:16.867Z"},
			{"-150", "2019-12-25T06:04:23.907Z"},
			{"-790", "2020-01-25T14:18:46.235Z"},
			{"-3210", "2020-02-05T16:33:06.386Z"},
			{"-1000", "2020-04-10T14:43:26.374Z"},
			{"8500", "2020-06-25T18:49:59.371Z"},
			{"-30", "2020-07-26T12:01:20.894Z"},
		},
	},
}

// DefaultAccounts returns fresh copies of the demo accounts.
func DefaultAccounts() []*model.Account {
	out := make([]*model.Account, 0, len(seed))
	for _, s := range seed {
		acct := &model.Account{
			Owner:        s.owner,
			Username:     id.Username(s.owner),
			PIN:          s.pin,
			InterestRate: decimal.RequireFromString(s.rate),
			Currency:     s.currency,
			Locale:       s.locale,
			Movements:    make([]model.Movement, 0, len(s.moves)),
		}
		for _, m := range s.moves {
			date, err := time.Parse(time.RFC3339Nano, m.date)
			if err != nil {
				panic("bad seed date " + m.date + ": " + err.Error())
			}
			acct.Append(model.NewMovement(decimal.RequireFromString(m.amount), date))
		}
		out = append(out, acct)
	}
	return out
}
