package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/idioms/catalog"
	"github.com/c360studio/idioms/config"
)

func listCmd(a *app) *cobra.Command {
	var (
		match  string
		long   bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "list-examples",
		Aliases: []string{"list"},
		Short:   "Print all example topics in declared order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, format)
			if err != nil {
				return err
			}

			examples, err := a.registry.Match(match)
			if err != nil {
				return err
			}
			return catalog.WriteList(cmd.OutOrStdout(), examples, f, long)
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "Only list topics matching a glob pattern")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show index, tags and summary")
	cmd.Flags().StringVarP(&format, "format", "o", "", "Output format:\n"+catalog.FormatUsage())

	return cmd
}

func runCmd(a *app) *cobra.Command {
	var (
		all         bool
		match       string
		parallel    int
		timeout     time.Duration
		format      string
		metricsFile string
		noCompare   bool
	)

	cmd := &cobra.Command{
		Use:     "run-example <index|name> [args...]",
		Aliases: []string{"run"},
		Short:   "Run one example, or the whole catalogue with --all",
		Example: `  idioms run-example 7
  idioms run-example "optional result" false
  idioms run-example --all --parallel 4
  idioms run-example --match '*pointer*'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("parallel") {
				a.cfg.Run.Parallel = parallel
			}
			if cmd.Flags().Changed("timeout") {
				a.cfg.SetRunTimeout(timeout)
			}
			if noCompare {
				off := false
				a.cfg.Run.CompareExpected = &off
			}
			if metricsFile != "" {
				a.cfg.Metrics.Textfile = metricsFile
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			metrics := catalog.NewMetrics()
			runner := catalog.NewRunner(catalog.WithLogger(a.logger), catalog.WithMetrics(metrics))

			var runErr error
			switch {
			case all || match != "":
				if len(args) > 0 {
					return errors.New("--all and --match take no positional arguments")
				}
				f, err := a.format(cmd, format)
				if err != nil {
					return err
				}
				runErr = a.runMany(cmd.Context(), cmd.OutOrStdout(), runner, match, f)
			case len(args) == 0:
				return errors.New("requires an example index or name (or --all)")
			default:
				runErr = a.runOne(cmd.Context(), cmd.OutOrStdout(), runner, args)
			}

			if path := a.cfg.Metrics.Textfile; path != "" {
				if err := metrics.WriteTextfile(path); err != nil {
					a.logger.Warn("Failed to write metrics", "path", path, "error", err)
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Run every example and report pass/fail")
	cmd.Flags().StringVarP(&match, "match", "m", "", "Run examples whose topic matches a glob pattern")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "Examples run concurrently with --all")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-example timeout (0 = none)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "Report format for --all:\n"+catalog.FormatUsage())
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this file")
	cmd.Flags().BoolVar(&noCompare, "no-compare", false, "Do not check outputs against recorded expectations")

	return cmd
}

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage idioms configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to ./" + config.ProjectConfigFile,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.NewLoader(a.logger).InitProjectConfig(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// format resolves the output format from the flag or the config.
func (a *app) format(cmd *cobra.Command, flagValue string) (catalog.Format, error) {
	if cmd.Flags().Changed("format") {
		return catalog.ParseFormat(flagValue)
	}
	return catalog.ParseFormat(a.cfg.Output.Format)
}

// resolve finds the example named by the longest prefix of args, so
// multi-word topics work with or without quoting. The rest are arguments.
func (a *app) resolve(args []string) (catalog.Example, []string, error) {
	var lastErr error
	for n := len(args); n >= 1; n-- {
		ex, err := a.registry.Lookup(strings.Join(args[:n], " "))
		if err == nil {
			return ex, args[n:], nil
		}
		lastErr = err
	}
	return catalog.Example{}, nil, lastErr
}

func (a *app) runOne(ctx context.Context, w io.Writer, runner *catalog.Runner, args []string) error {
	ex, exArgs, err := a.resolve(args)
	if err != nil {
		return err
	}

	if timeout := a.cfg.RunTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := runner.Run(ctx, ex, exArgs...)
	if _, werr := io.WriteString(w, out); werr != nil {
		return fmt.Errorf("write output: %w", werr)
	}
	return err
}

func (a *app) runMany(ctx context.Context, w io.Writer, runner *catalog.Runner, match string, f catalog.Format) error {
	examples, err := a.registry.Match(match)
	if err != nil {
		return err
	}
	if len(examples) == 0 {
		return fmt.Errorf("%w: no topic matches %q", catalog.ErrNotFound, match)
	}

	report := runner.RunAll(ctx, examples, a.cfg.RunOptions())
	if err := catalog.WriteReport(w, report, f); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if !report.OK() {
		return fmt.Errorf("%d of %d examples failed", report.Failed, len(report.Results))
	}
	return nil
}
