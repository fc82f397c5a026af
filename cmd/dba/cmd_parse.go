package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dhamidi/dba/format"
	"github.com/dhamidi/dba/troop"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse a troop definition and print its canonical form",
		Long: `Parse a troop definition and print it.

Without an argument every line of stdin is parsed; blank lines and lines
starting with # are skipped and errors are reported with their line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return printParse(cmd, outputFormat, strings.Join(args, " "), 1)
			}

			var failed int
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for n := 1; scanner.Scan(); n++ {
				line := scanner.Text()
				if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
					continue
				}
				if err := printParse(cmd, outputFormat, line, n); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed++
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if failed > 0 {
				return fmt.Errorf("%d definitions failed to parse", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, tree)")

	return cmd
}

func printParse(cmd *cobra.Command, outputFormat, text string, line int) error {
	node, err := troop.NewParser(text, troop.WithStartLine(line)).Parse()
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		enc := format.NewASTJSONEncoder(out)
		if encErr := enc.EncodeResult(node, err); encErr != nil {
			return fmt.Errorf("encode json: %w", encErr)
		}
		return err
	case "tree":
		if err != nil {
			return err
		}
		fmt.Fprint(out, node.DumpWithPositions())
	case "text":
		if err != nil {
			return err
		}
		fmt.Fprintln(out, node.String())
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	return nil
}
