package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/dba/element"
	"github.com/dhamidi/dba/troop"
	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	var contains string
	var types bool

	cmd := &cobra.Command{
		Use:   "units [expression]",
		Short: "List the unit codes a troop definition names",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			expr, err := troop.Parse(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if contains != "" {
				ok, err := expr.ContainsAllUnitsString(contains)
				if err != nil {
					return fmt.Errorf("contains: %w", err)
				}
				fmt.Fprintln(out, ok)
				if !ok {
					return fmt.Errorf("%s does not contain every unit of %s", expr, contains)
				}
				return nil
			}

			units := expr.UnitList()
			if !types {
				fmt.Fprintln(out, strings.Join(units, " "))
				return nil
			}
			for _, code := range units {
				name := "?"
				if t, ok := element.TypeOf(code); ok {
					name = t.ProperCase()
				}
				fmt.Fprintf(out, "%s\t%s\n", code, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contains, "contains", "", "check that these units all occur, counting duplicates")
	cmd.Flags().BoolVarP(&types, "types", "t", false, "print the element type of each unit")

	return cmd
}
