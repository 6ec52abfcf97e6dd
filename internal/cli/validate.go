package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func NewValidateCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and report load-time errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ra.ConfigPath == "" {
				return errors.New("validate requires --config")
			}

			_, err := ra.LoadHandle()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", ra.ConfigPath)

			return nil
		},
	}
}
