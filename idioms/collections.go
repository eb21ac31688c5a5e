package idioms

import (
	"context"
	"fmt"
	"iter"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/c360studio/idioms/catalog"
)

func rangeLoop(_ context.Context, env *catalog.Env) error {
	nums := []int{1, 2, 3}
	for _, n := range nums {
		fmt.Fprintln(env.Out, n)
	}
	return nil
}

func compositeLiteral(_ context.Context, env *catalog.Env) error {
	v := []int{1, 2, 3, 4}
	fmt.Fprintln(env.Out, v)
	return nil
}

// Filter lazily yields the elements of seq for which keep is true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func lazyFilterPipeline(_ context.Context, env *catalog.Env) error {
	v := []int{1, 2, 3, 4}
	even := func(n int) bool { return n%2 == 0 }

	var sb strings.Builder
	for x := range Filter(slices.Values(v), even) {
		sb.WriteString(strconv.Itoa(x))
	}
	fmt.Fprintln(env.Out, sb.String())
	return nil
}

func bitSet(_ context.Context, env *catalog.Env) error {
	raw := env.Arg(0, "10101010")
	v, err := strconv.ParseUint(raw, 2, 8)
	if err != nil {
		return fmt.Errorf("parse bit pattern %q: %w", raw, err)
	}
	b := uint8(v)
	fmt.Fprintf(env.Out, "%08b set=%d\n", b, bits.OnesCount8(b))
	return nil
}

func fixedSizeArray(_ context.Context, env *catalog.Env) error {
	arr := [3]int{1, 2, 3}
	fmt.Fprintf(env.Out, "%v len=%d\n", arr, len(arr))
	return nil
}

// Transform replaces every element of s with f applied to it.
func Transform[T any](s []T, f func(T) T) {
	for i := range s {
		s[i] = f(s[i])
	}
}

func inPlaceTransform(_ context.Context, env *catalog.Env) error {
	v := []int{1, 2, 3}
	Transform(v, func(x int) int { return x * 2 })
	fmt.Fprintln(env.Out, v)
	return nil
}

// Accumulate folds s from the left starting at init.
func Accumulate[T, A any](s []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

func accumulate(_ context.Context, env *catalog.Env) error {
	v := []int{1, 2, 3}
	sum := Accumulate(v, 0, func(acc, x int) int { return acc + x })
	fmt.Fprintln(env.Out, sum)
	return nil
}

// printSpan prints a view over part of an array without copying it.
func printSpan(env *catalog.Env, s []int) {
	parts := make([]string, len(s))
	for i, x := range s {
		parts[i] = strconv.Itoa(x)
	}
	fmt.Fprintln(env.Out, strings.Join(parts, " "))
}

func sliceView(_ context.Context, env *catalog.Env) error {
	arr := [5]int{1, 2, 3, 4, 5}
	printSpan(env, arr[1:4])
	return nil
}
