package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/finchley/lintgate/pkg/rule"
)

func NewDecideCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "decide <file> <code>",
		Short: "Resolve the enable/fix decision for one (file, code) pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := ra.LoadHandle()
			if err != nil {
				return err
			}

			decision := h.Engine.Decide(args[0], rule.Code(args[1]))

			out, err := yaml.Marshal(decision)
			if err != nil {
				return fmt.Errorf("marshal decision: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}

func NewExplainCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <file> <code>",
		Short: "Show which tokens and overrides produced a decision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := ra.LoadHandle()
			if err != nil {
				return err
			}

			explanation := h.Engine.Explain(args[0], rule.Code(args[1]))

			out, err := yaml.Marshal(explanation)
			if err != nil {
				return fmt.Errorf("marshal explanation: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}
