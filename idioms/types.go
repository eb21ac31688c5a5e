package idioms

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/c360studio/idioms/catalog"
)

func typeInference(_ context.Context, env *catalog.Env) error {
	x := 42
	fmt.Fprintf(env.Out, "%T %v\n", x, x)
	return nil
}

func pair() (int, string) { return 1, "one" }

func multipleReturnBinding(_ context.Context, env *catalog.Env) error {
	id, name := pair()
	fmt.Fprintln(env.Out, id, name)
	return nil
}

// Color is a scoped enumeration.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func scopedEnumeration(_ context.Context, env *catalog.Env) error {
	for _, c := range []Color{Red, Green, Blue} {
		fmt.Fprintln(env.Out, c)
	}
	return nil
}

// noCopy makes go vet's copylocks check reject copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// pinned may only be shared by pointer.
type pinned struct {
	_  noCopy
	mu sync.Mutex
	id int
}

func newPinned(id int) *pinned {
	return &pinned{id: id}
}

func nonCopyableValue(_ context.Context, env *catalog.Env) error {
	p := newPinned(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(env.Out, "pinned %d shared by pointer\n", p.id)
	return nil
}

type point struct{ x, y int }

func structLiteral(_ context.Context, env *catalog.Env) error {
	p := point{10, 20}
	fmt.Fprintln(env.Out, p)
	return nil
}

func dynamicAnyValue(_ context.Context, env *catalog.Env) error {
	var x any = 42
	if env.Arg(0, "int") == "string" {
		x = "42"
	}

	n, ok := x.(int)
	if !ok {
		return fmt.Errorf("bad any cast: holds %T, not int", x)
	}
	fmt.Fprintln(env.Out, n)
	return nil
}

func triple() (int, float64, rune) { return 1, 3.14, 'x' }

func tupleUnpacking(_ context.Context, env *catalog.Env) error {
	a, b, c := triple()
	fmt.Fprintf(env.Out, "%d %.2f %c\n", a, b, c)
	return nil
}

// configVersion is initialized once at package load.
var configVersion = 1

func packageLevelVariable(_ context.Context, env *catalog.Env) error {
	fmt.Fprintf(env.Out, "config version %d\n", configVersion)
	return nil
}

// Vector2 is a 2D integer vector.
type Vector2 struct{ X, Y int }

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func operatorMethod(_ context.Context, env *catalog.Env) error {
	sum := Vector2{1, 2}.Add(Vector2{3, 4})
	fmt.Fprintf(env.Out, "{%d %d}\n", sum.X, sum.Y)
	return nil
}

// Point has named fields.
type Point struct {
	X int
	Y int
}

func namedFieldInitialization(_ context.Context, env *catalog.Env) error {
	p := Point{X: 5, Y: 10}
	fmt.Fprintf(env.Out, "%+v\n", p)
	return nil
}

// Shape is the interface a downcast starts from.
type Shape interface {
	Name() string
}

type baseShape struct{}

func (baseShape) Name() string { return "base" }

// Rect embeds the base shape.
type Rect struct{ baseShape }

func (Rect) Name() string { return "rect" }

func checkedDowncast(_ context.Context, env *catalog.Env) error {
	var s Shape = &Rect{}
	if strings.EqualFold(env.Arg(0, "derived"), "base") {
		s = &baseShape{}
	}

	r, ok := s.(*Rect)
	fmt.Fprintf(env.Out, "downcast ok: %t\n", ok)
	if ok {
		fmt.Fprintln(env.Out, r.Name())
	}
	return nil
}

// Vec is a generic alias for a slice.
type Vec[T any] = []T

func genericTypeAlias(_ context.Context, env *catalog.Env) error {
	var myInts Vec[int]
	myInts = append(myInts, 7)
	fmt.Fprintf(env.Out, "%T %v\n", myInts, myInts)
	return nil
}

// Overrider is sealed: only types embedding sealedBase satisfy it.
type Overrider interface {
	F() string
	sealed()
}

type sealedBase struct{}

func (sealedBase) sealed() {}

type finalImpl struct{ sealedBase }

func (finalImpl) F() string { return "finalImpl.F" }

func sealedOverride(_ context.Context, env *catalog.Env) error {
	var o Overrider = finalImpl{}
	fmt.Fprintln(env.Out, o.F())
	return nil
}
