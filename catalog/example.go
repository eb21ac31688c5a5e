// Package catalog provides the example registry and runner for the idioms
// catalogue. An Example is a standalone demonstration of one language
// concept; the Registry keeps examples in declared order and the runner
// executes them in isolation, capturing their output.
package catalog

import (
	"context"
	"io"
	"strings"
)

// Tag groups examples by the concept family they demonstrate.
type Tag string

// Concept families used across the catalogue.
const (
	TagLifetime    Tag = "lifetime"
	TagTypes       Tag = "types"
	TagFunctions   Tag = "functions"
	TagGenerics    Tag = "generics"
	TagCollections Tag = "collections"
	TagDispatch    Tag = "dispatch"
	TagConcurrency Tag = "concurrency"
	TagCompileTime Tag = "compile-time"
)

// Env is what an example body sees while it runs.
type Env struct {
	// Out receives everything the example prints.
	Out io.Writer

	// Args are the caller's arguments, or the example's DefaultArgs.
	Args []string
}

// Arg returns the i-th argument or def when it is absent.
func (e *Env) Arg(i int, def string) string {
	if i < len(e.Args) && e.Args[i] != "" {
		return e.Args[i]
	}
	return def
}

// Body executes one example. Returning an error (or panicking) marks the
// run as failed with an ExecutionError.
type Body func(ctx context.Context, env *Env) error

// Example is one standalone demonstration unit.
type Example struct {
	// Index is the 1-based declared position, assigned by Registry.Add.
	Index int `json:"index" yaml:"index"`

	// Topic is the unique, human-readable label.
	Topic string `json:"topic" yaml:"topic"`

	// Summary is a one-line description of the concept.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Tags lists the concept families this example belongs to.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// DefaultArgs are used when Run is called without arguments.
	DefaultArgs []string `json:"default_args,omitempty" yaml:"default_args,omitempty"`

	// Expected is the output produced with DefaultArgs. Empty means the
	// output is not checked.
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Body is the executable demonstration.
	Body Body `json:"-" yaml:"-"`
}

// HasTag reports whether the example is tagged with t.
func (e Example) HasTag(t Tag) bool {
	for _, tag := range e.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// normalizeTopic folds a topic for case-insensitive lookups.
func normalizeTopic(topic string) string {
	return strings.ToLower(strings.Join(strings.Fields(topic), " "))
}
