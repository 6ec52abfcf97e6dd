package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func NewParamsCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "params <tool> [key]",
		Short: "Print resolved parameter values for a tool",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := ra.LoadHandle()
			if err != nil {
				return err
			}

			tool := args[0]

			if len(args) == 2 {
				value, ok := h.Params.Lookup(tool, args[1])
				if !ok {
					return fmt.Errorf("no value for %s.%s", tool, args[1])
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)

				return nil
			}

			keys := h.Params.Keys(tool)
			if len(keys) == 0 {
				return fmt.Errorf("no parameters for tool %q", tool)
			}

			sort.Strings(keys)
			for _, key := range keys {
				value, _ := h.Params.Lookup(tool, key)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, value)
			}

			return nil
		},
	}
}
