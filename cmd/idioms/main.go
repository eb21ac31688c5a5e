// Package main provides the idioms binary entry point.
// Idioms lists and runs a catalogue of small, standalone Go concept
// demonstrations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/idioms/catalog"
	"github.com/c360studio/idioms/config"
	"github.com/c360studio/idioms/idioms"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "idioms"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the CLI under a context cancelled by SIGINT or SIGTERM, so an
// interrupted run still reports and writes its metrics.
func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return rootCmd().ExecuteContext(ctx)
}

// app carries state shared by subcommands, set up before any of them runs.
type app struct {
	logger   *slog.Logger
	cfg      *config.Config
	registry *catalog.Registry
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Catalogue of runnable Go idiom demonstrations",
		Long: `Idioms is a catalogue of fifty small, independent demonstrations of
language concepts, each written the way Go expresses the concept.

Use list-examples to see the catalogue and run-example to execute one
example, a subset, or all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configPath, logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(listCmd(a))
	cmd.AddCommand(runCmd(a))
	cmd.AddCommand(configCmd(a))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func (a *app) setup(cmd *cobra.Command, configPath, logLevel string) error {
	// Configure logging
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	cfg, err := config.NewLoader(a.logger).Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.registry = idioms.NewRegistry()

	a.logger.Debug("Catalogue loaded", "examples", a.registry.Len())
	return nil
}
