package main

import (
	"fmt"

	"github.com/dhamidi/dba/catalog"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the army lists for inconsistencies",
		Long: `Check the army lists for inconsistencies: variant counts that differ from
their header, troop definitions that do not print back to themselves or admit
more compositions than the permutation limit, and enemy or ally references to
armies that are not in the lists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			problems, err := c.Check(cmd.Context(), catalog.CheckOptions{
				PermutationLimit: a.cfg.PermutationLimit,
				Workers:          workers,
			})
			if err != nil {
				return err
			}
			for _, p := range problems {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problems in %d armies", len(problems), c.Len())
			}
			log.Infof("%d armies ok", c.Len())
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "concurrent checks (default: number of CPUs)")

	return cmd
}
