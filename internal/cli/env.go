package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars binds environment variables to command flags. Names are
// LINTGATE_<FLAG> with dashes replaced by underscores, so "log-level" reads
// $LINTGATE_LOG_LEVEL. Arguments take precedence over environment variables,
// which take precedence over defaults.
func bindEnvVars(cmd *cobra.Command) {
	cmd.Flags().VisitAll(bindFlagToEnv)
	cmd.PersistentFlags().VisitAll(bindFlagToEnv)
}

func bindFlagToEnv(flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}

	err := flag.Value.Set(envValue)
	if err != nil {
		slog.Warn("invalid environment variable value",
			slog.String("var", envName),
			slog.Any("error", err),
		)

		return
	}

	flag.Changed = true
}

func flagToEnvName(flagName string) string {
	return "LINTGATE_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
