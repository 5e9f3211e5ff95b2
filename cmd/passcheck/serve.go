package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web analyzer",
		Long: `Serve starts a local web server hosting the interactive analyzer page
and its JSON API.

Passwords submitted to the analyzer are evaluated in memory and never
logged or stored; responses echo them masked.

Endpoints:
  GET  /          Interactive analyzer page
  POST /analyze   Evaluate a password, returns the masked JSON report
  GET  /generate  Generate a password (optional ?length= parameter)
  GET  /healthz   Health probe

Examples:
  # Serve on the default address (:5000)
  passcheck serve

  # Serve on a specific address
  passcheck serve --addr 127.0.0.1:8080`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultServerAddr,
		"Listen address in host:port or :port format")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: passcheck.yaml in current or XDG config directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd) || cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	eval, err := newEvaluator(cfg)
	if err != nil {
		return err
	}

	srv := server.New(cfg.ServerAddr, eval, server.WithLogger(logger))

	fmt.Fprintf(cmd.OutOrStdout(), "Starting web analyzer on %s\n", cfg.ServerAddr)
	fmt.Fprintf(cmd.OutOrStdout(), "Open %s in your browser (Ctrl+C to stop)\n", browserURL(cfg.ServerAddr))

	return srv.ListenAndServe(ctx)
}

// buildServeConfig creates a Config from cobra command flags.
// A config file listen address applies unless --addr was given.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("addr") {
		cfg.ServerAddr, err = cmd.Flags().GetString("addr")
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// browserURL turns a listen address into something a user can click.
// Port-only addresses get localhost as the host.
func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
