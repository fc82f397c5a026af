package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/dba/army"
	"github.com/dhamidi/dba/catalog"
	"github.com/dhamidi/dba/format"
	"github.com/spf13/cobra"
)

func newArmiesCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "armies",
		Short: "List and query the army lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return format.ArmyLines(cmd.OutOrStdout(), c.Armies())
		},
	}

	cmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "line", "output format ("+strings.Join(format.Names, ", ")+")")

	query := func(use, short string, build func(arg string) (catalog.Query, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := build(strings.Join(args, " "))
				if err != nil {
					return err
				}
				c, err := a.loadCatalog(cmd.Context())
				if err != nil {
					return err
				}
				variants, err := c.Search(q)
				if err != nil {
					return err
				}
				enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return enc.Encode(variants)
			},
		}
	}

	cmd.AddCommand(query("year <year>", "Armies active in a year, e.g. 44BC", func(arg string) (catalog.Query, error) {
		y, err := army.ParseYear(arg)
		return catalog.Query{Year: &y}, err
	}))
	cmd.AddCommand(query("terrain <terrain>", "Armies with a home terrain, e.g. Arable", func(arg string) (catalog.Query, error) {
		return catalog.Query{Terrain: arg}, nil
	}))
	cmd.AddCommand(query("aggression <0..6>", "Armies with an aggression rating", func(arg string) (catalog.Query, error) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return catalog.Query{}, fmt.Errorf("aggression %q is not a number", arg)
		}
		return catalog.Query{Aggression: &n}, nil
	}))
	cmd.AddCommand(query("element <code|type>", "Armies fielding a unit code or element type", func(arg string) (catalog.Query, error) {
		return catalog.Query{Element: arg}, nil
	}))
	cmd.AddCommand(query("troops <composition>", "Armies whose troop definition admits a composition", func(arg string) (catalog.Query, error) {
		return catalog.Query{Troops: arg}, nil
	}))
	cmd.AddCommand(query("units <units>", "Armies naming every one of the units", func(arg string) (catalog.Query, error) {
		return catalog.Query{Units: arg}, nil
	}))
	cmd.AddCommand(query("region <name>", "Armies of a region of the geographic index, e.g. Africa", func(arg string) (catalog.Query, error) {
		return catalog.Query{Region: arg}, nil
	}))
	cmd.AddCommand(newArmiesRegionsCmd())
	cmd.AddCommand(newArmiesShowCmd(a, &outputFormat))

	return cmd
}

func newArmiesRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [name]",
		Short: "Print the geographic index below a region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := army.World
			if len(args) == 1 {
				r, err := army.FindRegion(args[0])
				if err != nil {
					return err
				}
				root = r
			}
			out := cmd.OutOrStdout()
			var show func(r *army.Region, depth int)
			show = func(r *army.Region, depth int) {
				fmt.Fprintf(out, "%s%s", strings.Repeat("  ", depth), r.Name)
				if len(r.Armies) > 0 {
					fmt.Fprintf(out, "\t%s", army.CompactString(r.Armies))
				}
				fmt.Fprintln(out)
				for _, sub := range r.Regions {
					show(sub, depth+1)
				}
			}
			show(root, 0)
			return nil
		},
	}
}

func newArmiesShowCmd(a *app, outputFormat *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ref>",
		Short: "Show an army or a single variant with its enemies and allies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := army.ParseRef(args[0])
			if err != nil {
				return err
			}
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			ar, ok := c.Army(ref)
			if !ok {
				return fmt.Errorf("could not find army %s", ref)
			}
			variants := ar.Variants
			if ref.Version != 0 {
				v, ok := ar.Variant(ref)
				if !ok {
					return fmt.Errorf("could not find variant %s", ref)
				}
				variants = []*army.Variant{v}
			}

			enc, err := format.NewEncoder(*outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if *outputFormat == "json" {
				return enc.Encode(variants)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ar.Header)
			for _, v := range variants {
				if err := enc.Encode([]*army.Variant{v}); err != nil {
					return err
				}
				for _, rel := range []struct {
					name     string
					variants []*army.Variant
				}{
					{"enemies", c.Enemies(v)},
					{"allies", c.Allies(v)},
				} {
					if len(rel.variants) == 0 {
						continue
					}
					refs := make([]string, len(rel.variants))
					for i, r := range rel.variants {
						refs[i] = r.Ref.String()
					}
					fmt.Fprintf(out, "\t%s: %s\n", rel.name, strings.Join(refs, " "))
				}
			}
			return nil
		},
	}
}
