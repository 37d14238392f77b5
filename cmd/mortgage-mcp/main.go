package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roivaz/mortgage-mcp/internal/config"
	"github.com/roivaz/mortgage-mcp/internal/logging"
	"github.com/roivaz/mortgage-mcp/internal/mcp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mortgage-mcp: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mortgage-mcp",
		Short:         "MCP server for mortgage rates and mortgage calculations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFile()
		},
		RunE: serve,
	}

	root.PersistentFlags().String("api-url", "", "Mortgage API base URL (overrides MORTGAGE_API_BASE_URL)")
	root.PersistentFlags().String("http-timeout", "", "Timeout for each mortgage API call, e.g. 30s (default: none)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("env-file", "", "Dotenv file to load before reading configuration (default: .env)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve MCP over stdio (default)",
			Args:  cobra.NoArgs,
			RunE:  serve,
		},
		newToolsCmd(),
		newRatesCmd(),
		newCalculateCmd(),
	)

	config.Init(root)
	return root
}

func newLogger() logging.Logger {
	return logging.New(logging.NewLogr(config.LogLevel()))
}

// newServer builds the MCP server from process configuration. A missing API
// key fails here, before any transport is set up.
func newServer(log logging.Logger) (*mcp.Server, error) {
	cfg, err := mcp.DefaultConfig(log)
	if err != nil {
		return nil, err
	}
	return mcp.New(cfg), nil
}

func serve(cmd *cobra.Command, args []string) error {
	log := newLogger()
	srv, err := newServer(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		log.Info("received signal, shutting down", "signal", sig.String())
		return nil
	case err := <-errCh:
		return err
	}
}
