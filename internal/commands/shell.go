package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/session"
)

const loggedOutMessage = "Log in to get started"

var shellHelp = [][]string{
	{"Command", "Description"},
	{"login <user> <pin>", "start a session"},
	{"transfer <user> <amount>", "send money to another account"},
	{"loan <amount>", "request a loan, credited after a short delay"},
	{"close <user> <pin>", "close the logged-in account"},
	{"sort", "toggle between stored and amount order"},
	{"show", "redraw balance, movements and summary"},
	{"timer", "show time left before automatic logout"},
	{"export <file>", "write movements as CSV"},
	{"logout", "end the session"},
	{"help", "show this list"},
	{"quit", "leave the shell"},
}

// lockedWriter serializes writes from the input loop and timer callbacks.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

type shell struct {
	ctl   *session.Controller
	out   io.Writer
	loans sync.WaitGroup
}

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive banking session",
		Long: "Start an interactive session over the demo accounts. " +
			"The session logs out after a period without transfers or loans.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			sh := &shell{out: &lockedWriter{w: cmd.OutOrStdout()}}
			ctl, err := session.NewController(
				accounts.NewService(accounts.DefaultAccounts()),
				cfg,
				session.WithLogger(opts.logger(cmd, cfg)),
				session.WithExpireHook(sh.expired),
			)
			if err != nil {
				return err
			}
			sh.ctl = ctl

			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	defer s.shutdown(ctx)

	var scanErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	s.println(loggedOutMessage + ". Type help for commands.")
	for {
		s.prompt()
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if scanErr != nil {
					return fmt.Errorf("reading input: %w", scanErr)
				}
				return nil
			}
			quit, err := s.exec(ctx, line)
			if err != nil {
				s.fail(err)
			}
			if quit {
				return nil
			}
		}
	}
}

// shutdown lets pending loans settle before ending the session.
func (s *shell) shutdown(ctx context.Context) {
	s.loans.Wait()
	_ = s.ctl.Wait()
	s.ctl.Logout(ctx)
}

func (s *shell) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "login":
		return false, s.login(ctx, args)
	case "logout":
		s.ctl.Logout(ctx)
		s.println("Logged out. " + loggedOutMessage)
		return false, nil
	case "transfer":
		return false, s.transfer(ctx, args)
	case "loan":
		return false, s.loan(ctx, args)
	case "close":
		return false, s.close(ctx, args)
	case "sort":
		if _, err := s.ctl.ToggleSort(); err != nil {
			return false, err
		}
		return false, s.show()
	case "show":
		return false, s.show()
	case "timer":
		if _, ok := s.ctl.CurrentUser(); !ok {
			return false, session.ErrNotLoggedIn
		}
		s.println("You will be logged out in " + s.ctl.Timer().Label())
		return false, nil
	case "export":
		return false, s.export(args)
	case "help":
		table, err := pterm.DefaultTable.WithHasHeader().WithData(shellHelp).Srender()
		if err != nil {
			return false, err
		}
		s.println(table)
		return false, nil
	case "quit", "exit":
		return true, nil
	}
	return false, fmt.Errorf("unknown command %q (type help)", name)
}

func (s *shell) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <user> <pin>")
	}
	pin, err := parsePIN(args[1])
	if err != nil {
		return err
	}
	if err := s.ctl.Login(ctx, args[0], pin); err != nil {
		return err
	}
	return s.show()
}

func (s *shell) transfer(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: transfer <user> <amount>")
	}
	amount, err := ledger.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if err := s.ctl.Transfer(ctx, args[0], amount); err != nil {
		return err
	}
	s.success("Transferred %s to %s", amount, strings.ToLower(args[0]))
	return s.show()
}

func (s *shell) loan(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: loan <amount>")
	}
	amount, err := ledger.ParseAmount(args[0])
	if err != nil {
		return err
	}
	task, err := s.ctl.RequestLoan(ctx, amount)
	if err != nil {
		return err
	}

	s.info("Loan of %s approved, it will be credited shortly", task.Amount)
	s.loans.Add(1)
	go func() {
		defer s.loans.Done()
		if err := task.Wait(ctx); err != nil {
			s.fail(fmt.Errorf("loan of %s not credited: %w", task.Amount, err))
			return
		}
		s.success("Loan of %s credited to %s", task.Amount, task.Username)
	}()
	return nil
}

func (s *shell) close(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: close <user> <pin>")
	}
	pin, err := parsePIN(args[1])
	if err != nil {
		return err
	}
	if err := s.ctl.Close(ctx, args[0], pin); err != nil {
		return err
	}
	s.success("Account %s closed. %s", strings.ToLower(args[0]), loggedOutMessage)
	return nil
}

func (s *shell) export(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: export <file>")
	}
	v, err := s.ctl.View()
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	if err := ledger.WriteMovements(f, v.Account.Movements); err != nil {
		f.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export: %w", err)
	}
	s.success("Exported %d movements to %s", len(v.Account.Movements), args[0])
	return nil
}

func (s *shell) show() error {
	v, err := s.ctl.View()
	if err != nil {
		return err
	}
	out, err := renderView(v)
	if err != nil {
		return err
	}
	s.println(out)
	return nil
}

func (s *shell) expired(username string) {
	s.println("")
	s.info("Session for %s expired. %s", username, loggedOutMessage)
	s.prompt()
}

func (s *shell) prompt() {
	user, ok := s.ctl.CurrentUser()
	if !ok {
		user = "bankist"
	}
	fmt.Fprint(s.out, user+"> ")
}

func (s *shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *shell) success(format string, args ...any) {
	fmt.Fprint(s.out, pterm.Success.Sprintfln(format, args...))
}

func (s *shell) info(format string, args ...any) {
	fmt.Fprint(s.out, pterm.Info.Sprintfln(format, args...))
}

func (s *shell) fail(err error) {
	fmt.Fprint(s.out, pterm.Error.Sprintln(err))
}

func parsePIN(s string) (int, error) {
	pin, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: pin must be a number", session.ErrInvalidCredentials)
	}
	return pin, nil
}
