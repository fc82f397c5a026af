package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/dba/catalog"
	"github.com/dhamidi/dba/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("dba")

// app carries what the root command resolves for its subcommands.
type app struct {
	configPath string
	verbosity  int
	logPath    string
	headers    string
	variants   string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "dba",
		Short:   "Query DBA army lists and troop compositions",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: first of "+strings.Join(config.DefaultPaths, ", ")+")")
	flags.CountVarP(&a.verbosity, "verbose", "v", "log verbosity, repeat for more")
	flags.StringVar(&a.logPath, "log", "", "log file (default: stderr)")
	flags.StringVar(&a.headers, "headers", "", "army header CSV file")
	flags.StringVar(&a.variants, "variants", "", "army variant CSV file")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newPermuteCmd(a))
	rootCmd.AddCommand(newUnitsCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newArmiesCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// setup loads the configuration, lets flags override it and configures
// logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Find(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("headers") {
		cfg.Headers = a.headers
	}
	if flags.Changed("variants") {
		cfg.Variants = a.variants
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbosity = a.verbosity
	}
	if flags.Changed("log") {
		cfg.Log.Path = a.logPath
	}
	a.cfg = cfg

	if cfg.Log.Path != "" {
		commonlog.Configure(cfg.Log.Verbosity, &cfg.Log.Path)
	} else {
		commonlog.Configure(cfg.Log.Verbosity, nil)
	}
	return nil
}

// loadCatalog reads the configured CSV files. Rows that fail to load are
// logged and skipped.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if !a.cfg.HasCatalog() {
		return nil, fmt.Errorf("no army lists configured: set --headers and --variants, DBA_HEADERS and DBA_VARIANTS, or a config file")
	}
	c, err := catalog.LoadFiles(ctx, a.cfg.Headers, a.cfg.Variants)
	if c == nil {
		return nil, err
	}
	if err != nil {
		log.Warningf("some rows were skipped: %s", err)
	}
	return c, nil
}

// input joins the arguments into one expression, or reads it from in when
// there are none.
func input(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
