package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errBoom = errors.New("boom")

func TestRunCapturesOutput(t *testing.T) {
	ex := Example{Topic: "echo", Body: func(_ context.Context, env *Env) error {
		fmt.Fprintf(env.Out, "args=%s\n", strings.Join(env.Args, ","))
		return nil
	}, DefaultArgs: []string{"a", "b"}}

	t.Run("default args", func(t *testing.T) {
		out, err := Run(context.Background(), ex)
		require.NoError(t, err)
		assert.Equal(t, "args=a,b\n", out)
	})

	t.Run("caller args replace defaults", func(t *testing.T) {
		out, err := Run(context.Background(), ex, "x")
		require.NoError(t, err)
		assert.Equal(t, "args=x\n", out)
	})
}

func TestRunFailures(t *testing.T) {
	t.Run("body error becomes ExecutionError", func(t *testing.T) {
		ex := Example{Topic: "fails", Body: func(_ context.Context, env *Env) error {
			fmt.Fprint(env.Out, "partial")
			return errBoom
		}}

		out, err := Run(context.Background(), ex)
		require.Error(t, err)
		assert.Equal(t, "partial", out)

		var execErr *ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "fails", execErr.Topic)
		assert.ErrorIs(t, err, errBoom)
		assert.True(t, IsExecutionError(err))
		assert.Contains(t, err.Error(), `example "fails" failed: boom`)
	})

	t.Run("panic becomes ExecutionError", func(t *testing.T) {
		ex := Example{Topic: "panics", Body: func(context.Context, *Env) error {
			var m map[string]int
			m["x"] = 1
			return nil
		}}

		_, err := Run(context.Background(), ex)
		require.Error(t, err)
		assert.True(t, IsExecutionError(err))
		assert.ErrorIs(t, err, ErrBodyPanic)
	})

	t.Run("nil body", func(t *testing.T) {
		_, err := Run(context.Background(), Example{Topic: "empty"})
		assert.ErrorIs(t, err, ErrInvalidExample)
	})
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	examples := []Example{
		{Index: 1, Topic: "ok-1", Body: printBody("one\n"), Expected: "one\n"},
		{Index: 2, Topic: "broken", Body: func(context.Context, *Env) error { return errBoom }},
		{Index: 3, Topic: "panicky", Body: func(context.Context, *Env) error { panic("nope") }},
		{Index: 4, Topic: "mismatch", Body: printBody("actual\n"), Expected: "expected\n"},
		{Index: 5, Topic: "ok-2", Body: printBody("two\n")},
	}

	report := NewRunner().RunAll(context.Background(), examples, RunOptions{CompareExpected: true})

	require.Len(t, report.Results, 5)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 3, report.Failed)
	assert.False(t, report.OK())

	statuses := make([]Status, len(report.Results))
	for i, res := range report.Results {
		statuses[i] = res.Status
		assert.Equal(t, examples[i].Topic, res.Topic, "results keep declared order")
	}
	assert.Equal(t, []Status{StatusPass, StatusFail, StatusFail, StatusFail, StatusPass}, statuses)
	assert.Contains(t, report.Results[3].Error, ErrOutputMismatch.Error())

	failed := report.Failures()
	require.Len(t, failed, 3)
	assert.Equal(t, "broken", failed[0].Topic)
}

func TestRunAllWithoutComparison(t *testing.T) {
	examples := []Example{
		{Index: 1, Topic: "mismatch", Body: printBody("actual"), Expected: "expected"},
	}
	report := NewRunner().RunAll(context.Background(), examples, RunOptions{})
	assert.True(t, report.OK())
}

func TestRunAllParallelKeepsOrder(t *testing.T) {
	var running, peak atomic.Int32
	body := func(i int) Body {
		return func(_ context.Context, env *Env) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			fmt.Fprint(env.Out, i)
			return nil
		}
	}

	var examples []Example
	for i := range 12 {
		examples = append(examples, Example{Index: i + 1, Topic: fmt.Sprintf("ex-%d", i), Body: body(i)})
	}

	report := NewRunner().RunAll(context.Background(), examples, RunOptions{Parallel: 3})

	require.Len(t, report.Results, 12)
	for i, res := range report.Results {
		assert.Equal(t, fmt.Sprint(i), res.Output)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3), "parallelism must be bounded")
}

func TestRunAllTimeout(t *testing.T) {
	examples := []Example{
		{Index: 1, Topic: "slow", Body: func(ctx context.Context, _ *Env) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		}},
	}

	report := NewRunner().RunAll(context.Background(), examples, RunOptions{Timeout: 20 * time.Millisecond})
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusFail, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Error, context.DeadlineExceeded.Error())
}

func TestRunnerMetrics(t *testing.T) {
	m := NewMetrics()
	r := NewRunner(WithMetrics(m))

	_, _ = r.Run(context.Background(), Example{Topic: "good", Body: printBody("x")})
	_, _ = r.Run(context.Background(), Example{Topic: "good", Body: printBody("x")})
	_, _ = r.Run(context.Background(), Example{Topic: "bad", Body: func(context.Context, *Env) error { return errBoom }})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs().WithLabelValues("good", string(StatusPass))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs().WithLabelValues("bad", string(StatusFail))))

	path := filepath.Join(t.TempDir(), "idioms.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "idioms_example_runs_total")
}

func TestWriteReport(t *testing.T) {
	report := NewRunner().RunAll(context.Background(), []Example{
		{Index: 1, Topic: "ok", Body: printBody("fine\n")},
		{Index: 2, Topic: "broken", Body: func(context.Context, *Env) error { return errBoom }},
	}, RunOptions{})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, report, FormatText))
		out := buf.String()
		assert.Contains(t, out, "PASS  1. ok")
		assert.Contains(t, out, "FAIL  2. broken")
		assert.Contains(t, out, "1 passed, 1 failed")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, report, FormatJSON))
		var decoded Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, report.RunID, decoded.RunID)
		assert.Equal(t, 1, decoded.Failed)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, report, FormatYAML))
		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, report.RunID, decoded["run_id"])
	})
}

func TestWriteList(t *testing.T) {
	examples := newTestRegistry(t, "alpha", "beta").List()
	examples[0].Tags = []Tag{TagTypes}
	examples[0].Summary = "first letter"

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteList(&buf, examples, FormatText, false))
		assert.Equal(t, "alpha\nbeta\n", buf.String())
	})

	t.Run("long", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteList(&buf, examples, FormatText, true))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "types")
		assert.Contains(t, lines[0], "first letter")
	})

	t.Run("json omits bodies", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteList(&buf, examples, FormatJSON, false))
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "alpha", decoded[0]["topic"])
		assert.NotContains(t, decoded[0], "Body")
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, []string{"json", "text", "yaml"}, FormatNames())
}

func TestFormatUsage(t *testing.T) {
	lines := strings.Split(FormatUsage(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  json  Indented JSON", lines[0])
	assert.Contains(t, lines[1], "text")
	assert.Contains(t, lines[1], FormatRegistry[FormatText].Description)
}
