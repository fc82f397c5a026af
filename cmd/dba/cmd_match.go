package main

import (
	"fmt"

	"github.com/dhamidi/dba/troop"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var instance bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <candidate>",
		Short: "Report whether a candidate composition is compatible with a pattern",
		Long: `Report whether a candidate composition is compatible with a pattern.

With --instance the candidate must also be ground: no "or", "/" or "N/M"
alternatives may remain in it. The command fails when there is no match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := troop.Parse(args[0])
			if err != nil {
				return fmt.Errorf("pattern: %w", err)
			}
			candidate, err := troop.Parse(args[1])
			if err != nil {
				return fmt.Errorf("candidate: %w", err)
			}

			ok := pattern.Matches(candidate)
			if instance {
				ok = pattern.IsInstance(candidate)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return fmt.Errorf("%s does not match %s", candidate, pattern)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&instance, "instance", false, "require a ground candidate")

	return cmd
}
