package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Registry holds examples in declared order.
// Examples are added at startup and never mutated afterwards.
type Registry struct {
	mu       sync.RWMutex
	examples []Example
	byTopic  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byTopic: make(map[string]int),
	}
}

// Add appends an example and assigns its 1-based index.
func (r *Registry) Add(ex Example) error {
	topic := strings.TrimSpace(ex.Topic)
	if topic == "" {
		return fmt.Errorf("%w: empty topic", ErrInvalidExample)
	}
	if ex.Body == nil {
		return fmt.Errorf("%w: %q has no body", ErrInvalidExample, topic)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeTopic(topic)
	if _, exists := r.byTopic[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTopic, topic)
	}

	ex.Topic = topic
	ex.Index = len(r.examples) + 1
	ex.Tags = append([]Tag(nil), ex.Tags...)
	ex.DefaultArgs = append([]string(nil), ex.DefaultArgs...)

	r.examples = append(r.examples, ex)
	r.byTopic[key] = len(r.examples) - 1
	return nil
}

// MustAdd is Add for static tables; it panics on error.
func (r *Registry) MustAdd(examples ...Example) *Registry {
	for _, ex := range examples {
		if err := r.Add(ex); err != nil {
			panic(err)
		}
	}
	return r
}

// List returns the examples in declared order.
// The returned slice is a copy and may be modified by the caller.
func (r *Registry) List() []Example {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Example, len(r.examples))
	copy(out, r.examples)
	return out
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.examples)
}

// Topics returns the topic labels in declared order.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topics := make([]string, len(r.examples))
	for i, ex := range r.examples {
		topics[i] = ex.Topic
	}
	return topics
}

// Lookup resolves a 1-based index or a topic (case-insensitive).
func (r *Registry) Lookup(ref string) (Example, error) {
	ref = strings.TrimSpace(ref)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(r.examples) {
			return Example{}, fmt.Errorf("%w: index %d out of range 1..%d", ErrNotFound, n, len(r.examples))
		}
		return r.examples[n-1], nil
	}

	if i, ok := r.byTopic[normalizeTopic(ref)]; ok {
		return r.examples[i], nil
	}
	return Example{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

// Match returns the examples whose topic matches a doublestar glob pattern.
// Matching is case-insensitive; an empty pattern matches everything.
func (r *Registry) Match(pattern string) ([]Example, error) {
	if pattern == "" {
		return r.List(), nil
	}

	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern %q", pattern)
	}

	var matched []Example
	for _, ex := range r.List() {
		ok, err := doublestar.Match(pattern, normalizeTopic(ex.Topic))
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", ex.Topic, err)
		}
		if ok {
			matched = append(matched, ex)
		}
	}
	return matched, nil
}
