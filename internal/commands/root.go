package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/buildinfo"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	noColor    bool
}

// load reads the configuration named by --config and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

func (o *rootOptions) logger(cmd *cobra.Command, cfg *config.Config) logging.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "bankist",
		Short:   "A small demo bank: account summaries and timed sessions",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				pterm.DisableStyling()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a bankist.yaml file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colors and styling")

	rootCmd.AddCommand(
		newShellCommand(opts),
		newSummaryCommand(opts),
		newAccountsCommand(opts),
		newConfigCommand(opts),
	)

	return rootCmd
}
