package idioms

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/c360studio/idioms/catalog"
)

// Variant is a closed union of IntVariant and StringVariant.
type Variant interface {
	variant()
}

// IntVariant is the integer alternative of Variant.
type IntVariant int

// StringVariant is the string alternative of Variant.
type StringVariant string

func (IntVariant) variant()    {}
func (StringVariant) variant() {}

// Visit renders whichever alternative v holds.
func Visit(v Variant) string {
	switch val := v.(type) {
	case IntVariant:
		return strconv.Itoa(int(val))
	case StringVariant:
		return string(val)
	}
	return ""
}

func taggedUnionVisit(_ context.Context, env *catalog.Env) error {
	var v Variant = StringVariant("hello")
	fmt.Fprintln(env.Out, Visit(v))
	return nil
}

// IsIntegral reports whether T's underlying kind is an integer type.
func IsIntegral[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func describeIntegral[T any](w io.Writer) {
	name := reflect.TypeFor[T]().String()
	if IsIntegral[T]() {
		fmt.Fprintf(w, "%s is integral\n", name)
	} else {
		fmt.Fprintf(w, "%s is not integral\n", name)
	}
}

func typeTraits(_ context.Context, env *catalog.Env) error {
	describeIntegral[int](env.Out)
	describeIntegral[string](env.Out)
	return nil
}

// Foo has a generic method whose behavior is specialized for int.
type Foo[T any] struct{}

func (Foo[T]) Bar() string {
	var zero T
	if _, ok := any(zero).(int); ok {
		return "int"
	}
	return "generic"
}

func typeSpecialization(_ context.Context, env *catalog.Env) error {
	fmt.Fprintln(env.Out, Foo[int]{}.Bar())
	fmt.Fprintln(env.Out, Foo[string]{}.Bar())
	return nil
}

// KindOf is resolved per instantiation; the dead branch costs nothing at run time.
func KindOf[T any](t T) string {
	switch any(t).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	default:
		return "not int"
	}
}

func genericTypeBranching(_ context.Context, env *catalog.Env) error {
	fmt.Fprintln(env.Out, KindOf(5))
	fmt.Fprintln(env.Out, KindOf("five"))
	return nil
}

type dispatchTag interface {
	describe() string
}

type integralTag struct{}

type otherTag struct{}

func (integralTag) describe() string { return "integral" }
func (otherTag) describe() string    { return "not integral" }

func tagFor[T any]() dispatchTag {
	if IsIntegral[T]() {
		return integralTag{}
	}
	return otherTag{}
}

func doStuffImpl[T any](w io.Writer, _ T, tag dispatchTag) {
	fmt.Fprintln(w, tag.describe())
}

// DoStuff selects an implementation by a tag derived from T.
func DoStuff[T any](w io.Writer, x T) {
	doStuffImpl(w, x, tagFor[T]())
}

func tagDispatch(_ context.Context, env *catalog.Env) error {
	DoStuff(env.Out, 5)
	DoStuff(env.Out, 2.5)
	return nil
}

type implementer interface {
	implementation() string
}

// staticBase calls into its type parameter without virtual dispatch on itself.
type staticBase[D implementer] struct {
	derived D
}

func (b staticBase[D]) Interface() string {
	return b.derived.implementation()
}

type staticDerived struct{}

func (staticDerived) implementation() string { return "Derived impl" }

func staticPolymorphism(_ context.Context, env *catalog.Env) error {
	b := staticBase[staticDerived]{}
	fmt.Fprintln(env.Out, b.Interface())
	return nil
}

// Incrementable admits every numeric type that supports ++.
type Incrementable interface {
	constraints.Integer | constraints.Float
}

// Inc increments *x in place.
func Inc[T Incrementable](x *T) {
	*x++
}

func typeConstraints(_ context.Context, env *catalog.Env) error {
	i := 1
	f := 1.5
	Inc(&i)
	Inc(&f)
	fmt.Fprintln(env.Out, i, f)
	return nil
}

// Sum folds its arguments with +.
func Sum[T Incrementable](args ...T) T {
	var total T
	for _, a := range args {
		total += a
	}
	return total
}

func variadicFold(_ context.Context, env *catalog.Env) error {
	fmt.Fprintln(env.Out, Sum(1, 2, 3, 4, 5))
	return nil
}

// Zero returns T's zero value; every Go type has one.
func Zero[T any]() T {
	var z T
	return z
}

func zeroValueConstruction(_ context.Context, env *catalog.Env) error {
	fmt.Fprintf(env.Out, "%v %q %v\n", Zero[int](), Zero[string](), Zero[*int]())
	return nil
}
