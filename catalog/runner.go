package catalog

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of a single example run.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// RunOptions controls RunAll.
type RunOptions struct {
	// Parallel is the number of examples run concurrently. Values below 2
	// run sequentially.
	Parallel int

	// Timeout bounds each example through its context. Zero means no limit.
	Timeout time.Duration

	// CompareExpected fails examples whose output differs from Expected.
	CompareExpected bool
}

// Runner executes examples and records outcomes.
type Runner struct {
	logger  *slog.Logger
	metrics *Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records every run into m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner creates a runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the example with the default runner.
func Run(ctx context.Context, ex Example, args ...string) (string, error) {
	return NewRunner().Run(ctx, ex, args...)
}

// Run executes the example body and returns what it printed.
// Without args the example's DefaultArgs are used. A body error or panic is
// returned as *ExecutionError together with any partial output.
func (r *Runner) Run(ctx context.Context, ex Example, args ...string) (string, error) {
	if len(args) == 0 {
		args = ex.DefaultArgs
	}

	var buf bytes.Buffer
	env := &Env{
		Out:  &buf,
		Args: append([]string(nil), args...),
	}

	startedAt := time.Now()
	err := invoke(ctx, ex, env)
	elapsed := time.Since(startedAt)

	status := StatusPass
	if err != nil {
		status = StatusFail
		err = &ExecutionError{Topic: ex.Topic, Err: err}
	}
	r.metrics.observe(ex.Topic, status, elapsed)

	r.logger.Debug("Example executed",
		"index", ex.Index,
		"topic", ex.Topic,
		"status", status,
		"duration", elapsed)

	return buf.String(), err
}

// invoke calls the body, converting panics into errors.
func invoke(ctx context.Context, ex Example, env *Env) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrBodyPanic, rec)
		}
	}()

	if ex.Body == nil {
		return fmt.Errorf("%w: no body", ErrInvalidExample)
	}
	return ex.Body(ctx, env)
}

// RunAll runs every example with its default arguments. A failing example
// never stops the others; results keep the order of examples.
func (r *Runner) RunAll(ctx context.Context, examples []Example, opts RunOptions) *Report {
	report := &Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Results:   make([]Result, len(examples)),
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallel > 1 {
		g.SetLimit(opts.Parallel)
	} else {
		g.SetLimit(1)
	}

	for i, ex := range examples {
		g.Go(func() error {
			report.Results[i] = r.runOne(gctx, ex, opts)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	report.Duration = time.Since(report.StartedAt)
	for _, res := range report.Results {
		if res.Status == StatusPass {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	r.logger.Info("Catalogue run complete",
		"run_id", report.RunID,
		"passed", report.Passed,
		"failed", report.Failed,
		"duration", report.Duration)

	return report
}

func (r *Runner) runOne(ctx context.Context, ex Example, opts RunOptions) Result {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	startedAt := time.Now()
	out, err := r.Run(ctx, ex)
	if err == nil && opts.CompareExpected && ex.Expected != "" && out != ex.Expected {
		err = &ExecutionError{
			Topic: ex.Topic,
			Err:   fmt.Errorf("%w: want %q, got %q", ErrOutputMismatch, ex.Expected, out),
		}
	}

	res := Result{
		Index:    ex.Index,
		Topic:    ex.Topic,
		Status:   StatusPass,
		Output:   out,
		Duration: time.Since(startedAt),
	}
	if err != nil {
		res.Status = StatusFail
		res.Error = err.Error()
		r.logger.Warn("Example failed", "topic", ex.Topic, "error", err)
	}
	return res
}
