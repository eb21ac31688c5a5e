package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printBody(text string) Body {
	return func(_ context.Context, env *Env) error {
		fmt.Fprint(env.Out, text)
		return nil
	}
}

func newTestRegistry(t *testing.T, topics ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, topic := range topics {
		require.NoError(t, r.Add(Example{Topic: topic, Body: printBody(topic)}))
	}
	return r
}

func TestRegistryAdd(t *testing.T) {
	t.Run("assigns indexes in order", func(t *testing.T) {
		r := newTestRegistry(t, "first", "second", "third")

		list := r.List()
		require.Len(t, list, 3)
		for i, ex := range list {
			assert.Equal(t, i+1, ex.Index)
		}
		assert.Equal(t, []string{"first", "second", "third"}, r.Topics())
	})

	t.Run("rejects duplicate topics case-insensitively", func(t *testing.T) {
		r := newTestRegistry(t, "Range Loop")
		err := r.Add(Example{Topic: "range  loop", Body: printBody("x")})
		assert.ErrorIs(t, err, ErrDuplicateTopic)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("rejects empty topic", func(t *testing.T) {
		err := NewRegistry().Add(Example{Topic: "  ", Body: printBody("x")})
		assert.ErrorIs(t, err, ErrInvalidExample)
	})

	t.Run("rejects nil body", func(t *testing.T) {
		err := NewRegistry().Add(Example{Topic: "no body"})
		assert.ErrorIs(t, err, ErrInvalidExample)
	})

	t.Run("MustAdd panics on invalid example", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRegistry().MustAdd(Example{Topic: "a", Body: printBody("a")}, Example{Topic: "a", Body: printBody("a")})
		})
	})
}

func TestRegistryListIsACopy(t *testing.T) {
	r := newTestRegistry(t, "one", "two")

	list := r.List()
	list[0].Topic = "mutated"

	assert.Equal(t, []string{"one", "two"}, r.Topics())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, r.Topics(), r.Topics(), "List must be stable across calls")
}

func TestRegistryLookup(t *testing.T) {
	r := newTestRegistry(t, "square function", "optional result")

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "by index", ref: "2", want: "optional result"},
		{name: "by topic", ref: "square function", want: "square function"},
		{name: "topic ignores case and spacing", ref: "  Square   FUNCTION ", want: "square function"},
		{name: "index zero", ref: "0", wantErr: true},
		{name: "index past end", ref: "3", wantErr: true},
		{name: "unknown topic", ref: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := r.Lookup(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ex.Topic)
		})
	}
}

func TestRegistryMatch(t *testing.T) {
	r := newTestRegistry(t, "owned pointer", "range loop", "custom release hook", "slice view")

	t.Run("glob", func(t *testing.T) {
		got, err := r.Match("*o*p*")
		require.NoError(t, err)
		topics := make([]string, len(got))
		for i, ex := range got {
			topics[i] = ex.Topic
		}
		assert.Equal(t, []string{"owned pointer", "range loop"}, topics)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		got, err := r.Match("SLICE*")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].Index)
	})

	t.Run("empty pattern matches all", func(t *testing.T) {
		got, err := r.Match("")
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := r.Match("[unclosed")
		assert.Error(t, err)
	})
}

func TestExampleHasTag(t *testing.T) {
	ex := Example{Tags: []Tag{TagGenerics, TagDispatch}}
	assert.True(t, ex.HasTag(TagDispatch))
	assert.False(t, ex.HasTag(TagLifetime))
}

func TestEnvArg(t *testing.T) {
	env := &Env{Args: []string{"a", ""}}
	assert.Equal(t, "a", env.Arg(0, "x"))
	assert.Equal(t, "y", env.Arg(1, "y"), "empty argument falls back to default")
	assert.Equal(t, "z", env.Arg(5, "z"))
}
