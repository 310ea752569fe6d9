package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

type summaryOptions struct {
	file     string
	rate     string
	locale   string
	currency string
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	so := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary [user]",
		Short: "Print the balance, totals and movements of an account or statement",
		Example: "  bankist summary jd\n" +
			"  bankist summary --file statement.csv --rate 1.2 --locale pt-PT --currency EUR",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			var acct *model.Account
			switch {
			case len(args) == 1 && so.file != "":
				return errors.New("give either a user or --file, not both")
			case len(args) == 1:
				acct, err = seedAccount(args[0])
			case so.file != "":
				acct, err = statementAccount(so, cfg.Display.DefaultLocale, cfg.Display.DefaultCurrency)
			default:
				return errors.New("give a user or --file")
			}
			if err != nil {
				return err
			}

			if so.locale != "" {
				acct.Locale = so.locale
			}
			if so.currency != "" {
				acct.Currency = strings.ToUpper(so.currency)
			}

			out, err := renderStatement(acct, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&so.file, "file", "f", "", "CSV statement with date,type,amount rows")
	cmd.Flags().StringVar(&so.rate, "rate", "0", "interest rate in percent for --file")
	cmd.Flags().StringVar(&so.locale, "locale", "", "display locale, e.g. pt-PT")
	cmd.Flags().StringVar(&so.currency, "currency", "", "ISO 4217 currency code, e.g. EUR")

	return cmd
}

func seedAccount(username string) (*model.Account, error) {
	svc := accounts.NewService(accounts.DefaultAccounts())
	acct, ok := svc.Get(username)
	if !ok {
		return nil, fmt.Errorf("no account %q", username)
	}
	return acct, nil
}

func statementAccount(so *summaryOptions, locale, currency string) (*model.Account, error) {
	rate, err := ledger.ParseAmount(so.rate)
	if err != nil {
		return nil, fmt.Errorf("invalid --rate %q: %w", so.rate, err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("invalid --rate %q: must not be negative", so.rate)
	}

	f, err := os.Open(so.file)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	movs, err := ledger.ReadMovements(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", so.file, err)
	}

	return &model.Account{
		Owner:        so.file,
		Movements:    movs,
		InterestRate: rate,
		Currency:     currency,
		Locale:       locale,
	}, nil
}

func renderStatement(acct *model.Account, now time.Time) (string, error) {
	s := ledger.Summarize(acct.Movements, acct.InterestRate)

	table, err := renderMovements(acct.Movements, now, acct.Locale, acct.Currency)
	if err != nil {
		return "", fmt.Errorf("rendering movements: %w", err)
	}

	var b strings.Builder
	b.WriteString(pterm.DefaultSection.Sprint("Statement for " + acct.Owner))
	b.WriteString(renderBalance(s, now, acct.Locale, acct.Currency) + "\n")
	b.WriteString(table)
	b.WriteString("\n" + renderSummary(s, acct.Locale, acct.Currency) + "\n")
	return b.String(), nil
}
