// Package cli implements the lintgate command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finchley/lintgate/pkg/config"
	"github.com/finchley/lintgate/pkg/log"
)

const (
	cmdName = "lintgate"
	cmdDesc = `Resolve lint-rule policy into per-file, per-code decisions.`

	cmdExamples = `  # Should E501 be reported in src/app.py?
  lintgate decide src/app.py E501

  # Why (or why not)?
  lintgate explain tests/test_app.py E501

  # Resolved parameters for one tool:
  lintgate params pycodestyle max-line-length

  # Check a configuration for load-time errors:
  lintgate validate --config pyproject.toml`
)

// RootArgs carries flags shared by every subcommand.
type RootArgs struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(&ra.ConfigPath, "config", "c", "", "Configuration file (native YAML or pyproject.toml)")
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

// LoadHandle loads the configuration selected by flags: --config if given,
// the user configuration file if present, otherwise the embedded defaults.
func (ra *RootArgs) LoadHandle() (*config.Handle, error) {
	if ra.ConfigPath != "" {
		return config.Load(ra.ConfigPath)
	}

	path := config.GetPath()
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}

	return config.Default().Build()
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	cmd.AddCommand(
		NewDecideCmd(args),
		NewExplainCmd(args),
		NewParamsCmd(args),
		NewValidateCmd(args),
	)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		return nil
	}
}
