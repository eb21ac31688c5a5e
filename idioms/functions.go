package idioms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/c360studio/idioms/catalog"
)

// intArg parses the i-th argument as an int.
func intArg(env *catalog.Env, i int, def string) (int, error) {
	raw := env.Arg(i, def)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not an integer", i+1, raw)
	}
	return n, nil
}

func anonymousFunction(_ context.Context, env *catalog.Env) error {
	a, err := intArg(env, 0, "2")
	if err != nil {
		return err
	}
	b, err := intArg(env, 1, "3")
	if err != nil {
		return err
	}

	add := func(a, b int) int { return a + b }
	fmt.Fprintln(env.Out, add(a, b))
	return nil
}

// Square returns x*x. With a constant argument the compiler folds the call.
func Square(x int) int { return x * x }

func squareFunction(_ context.Context, env *catalog.Env) error {
	x, err := intArg(env, 0, "4")
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, Square(x))
	return nil
}

// Maybe returns 10 when ok is true and reports absence otherwise.
func Maybe(ok bool) (int, bool) {
	if ok {
		return 10, true
	}
	return 0, false
}

func optionalResult(_ context.Context, env *catalog.Env) error {
	raw := env.Arg(0, "true")
	ok, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("argument 1: %q is not a bool", raw)
	}

	if v, present := Maybe(ok); present {
		fmt.Fprintln(env.Out, v)
	} else {
		fmt.Fprintln(env.Out, "none")
	}
	return nil
}

// safe has no error result, so callers know it cannot fail.
func safe() int { return 1 }

func infallibleFunction(_ context.Context, env *catalog.Env) error {
	fmt.Fprintln(env.Out, safe())
	return nil
}

type delegated struct{ x int }

func newDelegated() *delegated { return newDelegatedWith(0) }

func newDelegatedWith(x int) *delegated { return &delegated{x: x} }

func delegatingConstructor(_ context.Context, env *catalog.Env) error {
	s := newDelegated()
	fmt.Fprintf(env.Out, "x=%d\n", s.x)
	return nil
}

// compute's result is meant to be used; an unused local is a compile error.
func compute() int { return 42 }

func mustUseResult(_ context.Context, env *catalog.Env) error {
	result := compute()
	fmt.Fprintln(env.Out, result)
	return nil
}

func functionValue(_ context.Context, env *catalog.Env) error {
	var op func(int, int) int = func(a, b int) int { return a + b }
	fmt.Fprintf(env.Out, "op(4, 5) = %d\n", op(4, 5))
	return nil
}

func namedLambda(_ context.Context, env *catalog.Env) error {
	x, err := intArg(env, 0, "3")
	if err != nil {
		return err
	}
	square := func(x int) int { return x * x }
	fmt.Fprintln(env.Out, square(x))
	return nil
}

func branchHint(_ context.Context, env *catalog.Env) error {
	x, err := intArg(env, 0, "1")
	if err != nil {
		return err
	}
	// No hint syntax; profile-guided optimization lays out hot branches.
	if x > 0 {
		fmt.Fprintln(env.Out, "positive")
	} else {
		fmt.Fprintln(env.Out, "non-positive")
	}
	return nil
}
