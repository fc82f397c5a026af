package main

import (
	"fmt"

	"github.com/dhamidi/dba/troop"
	"github.com/spf13/cobra"
)

func newPermuteCmd(a *app) *cobra.Command {
	var limit int
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "permute [expression]",
		Short: "List every ground composition a troop definition admits",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			expr, err := troop.Parse(text)
			if err != nil {
				return err
			}

			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), expr.PermutationCount())
				return nil
			}

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.PermutationLimit
			}
			compositions, err := expr.PermuteLimit(limit)
			if err != nil {
				return fmt.Errorf("%w (use --count, or raise --limit)", err)
			}
			for _, c := range compositions {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of compositions, 0 for no limit (default from config)")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "only print the number of compositions")

	return cmd
}
