package idioms

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/idioms/catalog"
)

func TestCatalogueShape(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, 50, r.Len())
	assert.Len(t, r.List(), 50)

	seen := make(map[string]bool)
	for i, ex := range r.List() {
		assert.Equal(t, i+1, ex.Index)
		assert.NotEmpty(t, ex.Summary, "example %q needs a summary", ex.Topic)
		assert.NotEmpty(t, ex.Tags, "example %q needs a tag", ex.Topic)
		assert.NotEmpty(t, ex.Expected, "example %q needs expected output", ex.Topic)
		assert.False(t, seen[ex.Topic], "duplicate topic %q", ex.Topic)
		seen[ex.Topic] = true
	}

	assert.Equal(t, r.Topics(), NewRegistry().Topics(), "declared order must be stable")
}

func TestCatalogueOrderAnchors(t *testing.T) {
	r := NewRegistry()

	anchors := map[int]string{
		1:  "scoped resource cleanup",
		7:  TopicSquare,
		8:  TopicOptional,
		18: TopicAnyValue,
		41: "asynchronous task",
		50: "sealed override",
	}
	for idx, topic := range anchors {
		ex, err := r.Lookup(topic)
		require.NoError(t, err)
		assert.Equal(t, idx, ex.Index, "topic %q", topic)
	}
}

func TestEveryExampleMatchesExpected(t *testing.T) {
	for _, ex := range NewRegistry().List() {
		t.Run(ex.Topic, func(t *testing.T) {
			out, err := catalog.Run(context.Background(), ex)
			require.NoError(t, err)
			assert.Equal(t, ex.Expected, out)
		})
	}
}

func TestRunAllTwiceIsIdentical(t *testing.T) {
	r := NewRegistry()
	runner := catalog.NewRunner()
	opts := catalog.RunOptions{CompareExpected: true, Parallel: 4}

	first := runner.RunAll(context.Background(), r.List(), opts)
	second := runner.RunAll(context.Background(), r.List(), opts)

	require.True(t, first.OK(), "failures: %+v", first.Failures())
	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Output, second.Results[i].Output, "example %q", first.Results[i].Topic)
	}
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestPinnedScenarios(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	tests := []struct {
		name    string
		ref     string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "square with default input", ref: TopicSquare, want: "16"},
		{name: "square with explicit input", ref: "7", args: []string{"5"}, want: "25"},
		{name: "square with bad input", ref: TopicSquare, args: []string{"four"}, wantErr: true},
		{name: "optional present", ref: TopicOptional, args: []string{"true"}, want: "10"},
		{name: "optional absent", ref: TopicOptional, args: []string{"false"}, want: "none"},
		{name: "any holding int", ref: TopicAnyValue, want: "42"},
		{name: "any bad cast", ref: TopicAnyValue, args: []string{"string"}, wantErr: true},
		{name: "downcast to wrong type", ref: "checked downcast", args: []string{"base"}, want: "downcast ok: false"},
		{name: "branch not taken", ref: "branch hint", args: []string{"-3"}, want: "non-positive"},
		{name: "bit set custom pattern", ref: "bit set", args: []string{"11110000"}, want: "11110000 set=4"},
		{name: "bit set invalid pattern", ref: "bit set", args: []string{"102"}, wantErr: true},
		{name: "anonymous function args", ref: "anonymous function", args: []string{"7", "8"}, want: "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := r.Lookup(tt.ref)
			require.NoError(t, err)

			out, err := catalog.Run(ctx, ex, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, catalog.IsExecutionError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}
