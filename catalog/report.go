package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// Result is the outcome of one example within a RunAll.
type Result struct {
	Index    int           `json:"index" yaml:"index"`
	Topic    string        `json:"topic" yaml:"topic"`
	Status   Status        `json:"status" yaml:"status"`
	Output   string        `json:"output" yaml:"output"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}

// Report summarizes a RunAll.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration"`
	Passed    int           `json:"passed" yaml:"passed"`
	Failed    int           `json:"failed" yaml:"failed"`
	Results   []Result      `json:"results" yaml:"results"`
}

// OK reports whether every example passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results in run order.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Status == StatusFail {
			failed = append(failed, res)
		}
	}
	return failed
}

// Format identifies an output encoding for reports and listings.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatInfo provides metadata about an output format.
type FormatInfo struct {
	Name        Format
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatText: {Name: FormatText, Description: "Human-readable console output"},
	FormatJSON: {Name: FormatJSON, Description: "Indented JSON"},
	FormatYAML: {Name: FormatYAML, Description: "YAML document"},
}

// ParseFormat validates a format name. Empty means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(name))
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// FormatNames returns the supported format names, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// FormatUsage describes each format on its own line, for flag help.
func FormatUsage() string {
	var b strings.Builder
	for i, name := range FormatNames() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %-5s %s", name, FormatRegistry[Format(name)].Description)
	}
	return b.String()
}

// WriteReport renders a report.
func WriteReport(w io.Writer, report *Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	}

	for _, res := range report.Results {
		mark := "PASS"
		if res.Status == StatusFail {
			mark = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "%s %2d. %s\n", mark, res.Index, res.Topic); err != nil {
			return err
		}
		if res.Error != "" {
			if _, err := fmt.Fprintf(w, "        %s\n", res.Error); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%d passed, %d failed (run %s)\n", report.Passed, report.Failed, report.RunID)
	return err
}

// WriteList renders example topics. With long set, the text format adds
// index, tags and summary columns.
func WriteList(w io.Writer, examples []Example, format Format, long bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, examples)
	case FormatYAML:
		return writeYAML(w, examples)
	}

	if !long {
		for _, ex := range examples {
			if _, err := fmt.Fprintln(w, ex.Topic); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ex := range examples {
		tags := make([]string, len(ex.Tags))
		for i, t := range ex.Tags {
			tags[i] = string(t)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", ex.Index, ex.Topic, strings.Join(tags, ","), ex.Summary)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
