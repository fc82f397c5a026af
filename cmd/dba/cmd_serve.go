package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/dba/catalog"
	"github.com/dhamidi/dba/ui"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI and JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Listen
			}

			var cat *catalog.Catalog
			if a.cfg.HasCatalog() {
				var err error
				cat, err = a.loadCatalog(cmd.Context())
				if err != nil {
					return err
				}
				log.Infof("serving %d armies", cat.Len())
			} else {
				log.Warningf("no army lists configured, serving the expression API only")
			}

			server, err := ui.NewServer(cat, ui.WithPermutationLimit(a.cfg.PermutationLimit))
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default from config, :8080)")

	return cmd
}
