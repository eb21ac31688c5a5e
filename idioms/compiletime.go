package idioms

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/c360studio/idioms/catalog"
)

// Fails to compile unless int32 is exactly four bytes: any other size
// indexes out of range or overflows the constant.
var _ = [1]struct{}{}[unsafe.Sizeof(int32(0))-4]

func compileTimeAssertion(_ context.Context, env *catalog.Env) error {
	fmt.Fprintf(env.Out, "int32 is %d bytes\n", unsafe.Sizeof(int32(0)))
	return nil
}

const magic = 6 * 7

func compileTimeConstant(_ context.Context, env *catalog.Env) error {
	fmt.Fprintln(env.Out, magic)
	return nil
}
