package idioms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/c360studio/idioms/catalog"
)

func monotonicTiming(_ context.Context, env *catalog.Env) error {
	start := time.Now()
	total := 0
	for i := range 1000 {
		total += i
	}
	elapsed := time.Since(start) // monotonic clock reading
	fmt.Fprintf(env.Out, "sum=%d elapsed >= 0: %t\n", total, elapsed >= 0)
	return nil
}

func goroutineLocalState(_ context.Context, env *catalog.Env) error {
	// Go has no thread-local storage; each goroutine owns the state it is given.
	const workers = 2
	counters := make([]int, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter := 0
			for range 3 {
				counter++
			}
			counters[w] = counter
		}()
	}
	wg.Wait()

	for w, c := range counters {
		fmt.Fprintf(env.Out, "worker %d counter=%d\n", w, c)
	}
	return nil
}

// Reduce sums s in parallel chunks and combines the partial sums.
func Reduce(ctx context.Context, s []int, chunks int) (int, error) {
	if chunks < 1 {
		chunks = 1
	}
	size := (len(s) + chunks - 1) / chunks
	if size == 0 {
		return 0, nil
	}

	partials := make([]int, 0, chunks)
	for lo := 0; lo < len(s); lo += size {
		partials = append(partials, 0)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range partials {
		lo := i * size
		hi := min(lo+size, len(s))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, v := range s[lo:hi] {
				partials[i] += v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("reduce: %w", err)
	}

	total := 0
	for _, p := range partials {
		total += p
	}
	return total, nil
}

func parallelReduce(ctx context.Context, env *catalog.Env) error {
	result, err := Reduce(ctx, []int{1, 2, 3, 4}, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, result)
	return nil
}

// Task is a computation started in the background and awaited later.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Start runs fn in its own goroutine and returns immediately.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.val, t.err = fn(ctx)
	}()
	return t
}

// Await blocks until the task finishes or ctx is done.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func asynchronousTask(ctx context.Context, env *catalog.Env) error {
	task := Start(ctx, func(context.Context) (string, error) {
		return "done", nil
	})
	fmt.Fprintln(env.Out, "caller continued")

	result, err := task.Await(ctx)
	if err != nil {
		return fmt.Errorf("await task: %w", err)
	}
	fmt.Fprintf(env.Out, "task result: %s\n", result)
	return nil
}
