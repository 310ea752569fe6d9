package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/bankist-dev/bankist/internal/format"
	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/session"
)

// renderMovements draws movements newest first, numbered by their position
// in the given order.
func renderMovements(movs []model.Movement, now time.Time, locale, currency string) (string, error) {
	data := pterm.TableData{{"#", "Type", "Date", "Amount"}}
	for i := len(movs) - 1; i >= 0; i-- {
		m := movs[i]
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strings.ToUpper(string(m.Kind())),
			format.MovementDate(m.Date, now, locale),
			format.Currency(m.Amount, locale, currency),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderSummary(s model.Summary, locale, currency string) string {
	return fmt.Sprintf("In %s  Out %s  Interest %s",
		format.Currency(s.TotalDeposits, locale, currency),
		format.Currency(s.TotalWithdrawals, locale, currency),
		format.Currency(s.QualifyingInterest, locale, currency),
	)
}

func renderBalance(s model.Summary, now time.Time, locale, currency string) string {
	return fmt.Sprintf("Current balance (as of %s): %s",
		format.DateTime(now, locale),
		format.Currency(s.Balance, locale, currency),
	)
}

// renderView draws the logged-in screen.
func renderView(v session.View) (string, error) {
	acct := v.Account

	table, err := renderMovements(v.Movements, v.Now, acct.Locale, acct.Currency)
	if err != nil {
		return "", fmt.Errorf("rendering movements: %w", err)
	}

	order := "stored order"
	if v.Sorted {
		order = "sorted by amount"
	}

	var b strings.Builder
	b.WriteString(pterm.DefaultSection.Sprint(v.Welcome))
	b.WriteString(renderBalance(v.Summary, v.Now, acct.Locale, acct.Currency) + "\n")
	b.WriteString(table)
	b.WriteString("\n" + renderSummary(v.Summary, acct.Locale, acct.Currency) + "\n")
	fmt.Fprintf(&b, "Movements in %s. You will be logged out in %s\n", order, v.Timer)
	return b.String(), nil
}
