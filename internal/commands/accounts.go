package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/format"
	"github.com/bankist-dev/bankist/internal/ledger"
)

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the demo accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.load(); err != nil {
				return err
			}

			accts := accounts.DefaultAccounts()
			data := pterm.TableData{{"Owner", "Username", "Currency", "Locale", "Rate", "Balance"}}
			for _, a := range accts {
				data = append(data, []string{
					a.Owner,
					a.Username,
					a.Currency,
					a.Locale,
					a.InterestRate.String() + "%",
					format.Currency(ledger.Balance(a.Movements), a.Locale, a.Currency),
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf("rendering accounts: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			for _, issue := range accounts.Validate(accts) {
				fmt.Fprint(cmd.OutOrStdout(), pterm.Warning.Sprintln(issue.Error()))
			}
			return nil
		},
	}
}
