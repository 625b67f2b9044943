package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/server"
	"github.com/loom-ui/loom/pkg/showcase"
)

func devCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Serve the showcase with a live patch stream",
		Long: `Serve the showcase app.

The server renders the page once per request, then each browser tab
opens a websocket: events flow up, binary facet patches flow back.

Examples:
  loom dev
  loom dev --addr=:3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(addr, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	return cmd
}

func runDev(addr string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	printBanner()
	fmt.Println()
	info("serving showcase on http://localhost%s", addr)
	info("metrics on http://localhost%s/metrics", addr)
	fmt.Println()

	srv := server.New(showcase.App, &server.Config{
		Addr:   addr,
		Title:  "Loom examples",
		CSS:    showcase.CSS,
		Logger: logger,
	})
	return srv.Start()
}
