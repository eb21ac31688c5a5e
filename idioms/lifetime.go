package idioms

import (
	"context"
	"fmt"
	"io"

	"github.com/c360studio/idioms/catalog"
)

// trackedFile announces when it is opened and closed.
type trackedFile struct {
	out io.Writer
}

func openTrackedFile(out io.Writer) *trackedFile {
	fmt.Fprintln(out, "Opened")
	return &trackedFile{out: out}
}

func (f *trackedFile) Close() error {
	fmt.Fprintln(f.out, "Closed")
	return nil
}

func scopedCleanup(_ context.Context, env *catalog.Env) error {
	useFile := func() {
		f := openTrackedFile(env.Out)
		defer f.Close()
		fmt.Fprintln(env.Out, "Using")
	}
	useFile()
	return nil
}

func ownedPointer(_ context.Context, env *catalog.Env) error {
	p := new(int)
	*p = 10
	fmt.Fprintln(env.Out, *p)
	return nil
}

func ownershipTransfer(_ context.Context, env *catalog.Env) error {
	a := []byte("abc")
	b := a
	a = nil // b is now the only owner
	fmt.Fprintf(env.Out, "a=%q b=%q\n", a, b)
	return nil
}

// closerFunc adapts a release function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// handle pairs a resource name with its release hook.
type handle struct {
	name string
	io.Closer
}

func acquire(out io.Writer, name string) *handle {
	fmt.Fprintf(out, "acquired %s\n", name)
	return &handle{
		name: name,
		Closer: closerFunc(func() error {
			fmt.Fprintf(out, "released %s\n", name)
			return nil
		}),
	}
}

func customReleaseHook(_ context.Context, env *catalog.Env) error {
	h := acquire(env.Out, env.Arg(0, "file.txt"))
	defer h.Close()
	return nil
}

// Exchange stores v in *p and returns the previous value.
func Exchange[T any](p *T, v T) T {
	old := *p
	*p = v
	return old
}

func valueExchange(_ context.Context, env *catalog.Env) error {
	a := 10
	b := Exchange(&a, 0)
	fmt.Fprintf(env.Out, "a=%d b=%d\n", a, b)
	return nil
}
