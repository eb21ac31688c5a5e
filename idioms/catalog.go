// Package idioms holds the fifty concept demonstrations, each expressed the
// way Go expresses the concept, in their declared order.
package idioms

import (
	"github.com/c360studio/idioms/catalog"
)

// Topics of the examples pinned by callers and tests.
const (
	TopicSquare   = "square function"
	TopicOptional = "optional result"
	TopicAnyValue = "dynamic any value"
)

// Examples returns the catalogue in declared order. Each call builds a fresh
// slice so no state is shared between callers.
func Examples() []catalog.Example {
	return []catalog.Example{
		{
			Topic:    "scoped resource cleanup",
			Summary:  "defer releases a resource when the enclosing function returns",
			Tags:     []catalog.Tag{catalog.TagLifetime},
			Expected: "Opened\nUsing\nClosed\n",
			Body:     scopedCleanup,
		},
		{
			Topic:    "range loop",
			Summary:  "for-range iterates a slice by value",
			Tags:     []catalog.Tag{catalog.TagCollections},
			Expected: "1\n2\n3\n",
			Body:     rangeLoop,
		},
		{
			Topic:    "type inference",
			Summary:  "short variable declarations infer the static type",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "int 42\n",
			Body:     typeInference,
		},
		{
			Topic:    "multiple return binding",
			Summary:  "bind several results of one call to named variables",
			Tags:     []catalog.Tag{catalog.TagTypes, catalog.TagFunctions},
			Expected: "1 one\n",
			Body:     multipleReturnBinding,
		},
		{
			Topic:    "owned pointer",
			Summary:  "new allocates a value; the garbage collector ends its lifetime",
			Tags:     []catalog.Tag{catalog.TagLifetime},
			Expected: "10\n",
			Body:     ownedPointer,
		},
		{
			Topic:       "anonymous function",
			Summary:     "function literals bound to local variables",
			Tags:        []catalog.Tag{catalog.TagFunctions},
			DefaultArgs: []string{"2", "3"},
			Expected:    "5\n",
			Body:        anonymousFunction,
		},
		{
			Topic:       TopicSquare,
			Summary:     "a pure function the compiler folds for constant input",
			Tags:        []catalog.Tag{catalog.TagFunctions, catalog.TagCompileTime},
			DefaultArgs: []string{"4"},
			Expected:    "16\n",
			Body:        squareFunction,
		},
		{
			Topic:       TopicOptional,
			Summary:     "comma-ok results signal a possibly absent value",
			Tags:        []catalog.Tag{catalog.TagTypes, catalog.TagFunctions},
			DefaultArgs: []string{"true"},
			Expected:    "10\n",
			Body:        optionalResult,
		},
		{
			Topic:    "tagged union visit",
			Summary:  "a sealed interface plus a type switch acts as a variant and visitor",
			Tags:     []catalog.Tag{catalog.TagDispatch, catalog.TagTypes},
			Expected: "hello\n",
			Body:     taggedUnionVisit,
		},
		{
			Topic:    "scoped enumeration",
			Summary:  "a named integer type with iota constants and a String method",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "Red\nGreen\nBlue\n",
			Body:     scopedEnumeration,
		},
		{
			Topic:    "non-copyable value",
			Summary:  "a noCopy marker makes go vet reject copies",
			Tags:     []catalog.Tag{catalog.TagTypes, catalog.TagLifetime},
			Expected: "pinned 1 shared by pointer\n",
			Body:     nonCopyableValue,
		},
		{
			Topic:    "infallible function",
			Summary:  "a function without an error result cannot report failure",
			Tags:     []catalog.Tag{catalog.TagFunctions},
			Expected: "1\n",
			Body:     infallibleFunction,
		},
		{
			Topic:    "ownership transfer",
			Summary:  "hand a buffer to a new owner and drop the old reference",
			Tags:     []catalog.Tag{catalog.TagLifetime},
			Expected: "a=\"\" b=\"abc\"\n",
			Body:     ownershipTransfer,
		},
		{
			Topic:    "composite literal",
			Summary:  "initialize a slice from a list of elements",
			Tags:     []catalog.Tag{catalog.TagCollections},
			Expected: "[1 2 3 4]\n",
			Body:     compositeLiteral,
		},
		{
			Topic:    "delegating constructor",
			Summary:  "one constructor function forwards to another with defaults",
			Tags:     []catalog.Tag{catalog.TagFunctions},
			Expected: "x=0\n",
			Body:     delegatingConstructor,
		},
		{
			Topic:    "struct literal",
			Summary:  "positional struct initialization",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "{10 20}\n",
			Body:     structLiteral,
		},
		{
			Topic:    "type traits",
			Summary:  "query properties of a type parameter through reflect",
			Tags:     []catalog.Tag{catalog.TagGenerics},
			Expected: "int is integral\nstring is not integral\n",
			Body:     typeTraits,
		},
		{
			Topic:       TopicAnyValue,
			Summary:     "any holds a value of any type; a checked assertion recovers it",
			Tags:        []catalog.Tag{catalog.TagTypes, catalog.TagDispatch},
			DefaultArgs: []string{"int"},
			Expected:    "42\n",
			Body:        dynamicAnyValue,
		},
		{
			Topic:    "tuple unpacking",
			Summary:  "heterogeneous multiple results unpacked in one statement",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "1 3.14 x\n",
			Body:     tupleUnpacking,
		},
		{
			Topic:    "monotonic timing",
			Summary:  "time.Since uses the monotonic clock reading",
			Tags:     []catalog.Tag{catalog.TagConcurrency},
			Expected: "sum=499500 elapsed >= 0: true\n",
			Body:     monotonicTiming,
		},
		{
			Topic:    "compile-time assertion",
			Summary:  "a constant array index that only compiles when the size holds",
			Tags:     []catalog.Tag{catalog.TagCompileTime},
			Expected: "int32 is 4 bytes\n",
			Body:     compileTimeAssertion,
		},
		{
			Topic:    "type specialization",
			Summary:  "a generic method that behaves differently for one type argument",
			Tags:     []catalog.Tag{catalog.TagGenerics, catalog.TagDispatch},
			Expected: "int\ngeneric\n",
			Body:     typeSpecialization,
		},
		{
			Topic:    "lazy filter pipeline",
			Summary:  "range-over-func iterators compose without intermediate slices",
			Tags:     []catalog.Tag{catalog.TagCollections, catalog.TagGenerics},
			Expected: "24\n",
			Body:     lazyFilterPipeline,
		},
		{
			Topic:    "goroutine-local state",
			Summary:  "each goroutine owns the state it is handed",
			Tags:     []catalog.Tag{catalog.TagConcurrency},
			Expected: "worker 0 counter=3\nworker 1 counter=3\n",
			Body:     goroutineLocalState,
		},
		{
			Topic:    "package-level variable",
			Summary:  "a variable initialized once when the package loads",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "config version 1\n",
			Body:     packageLevelVariable,
		},
		{
			Topic:    "must-use result",
			Summary:  "unused locals are compile errors, so results get consumed",
			Tags:     []catalog.Tag{catalog.TagFunctions, catalog.TagCompileTime},
			Expected: "42\n",
			Body:     mustUseResult,
		},
		{
			Topic:    "generic type branching",
			Summary:  "a type switch on a type parameter selects a branch per instantiation",
			Tags:     []catalog.Tag{catalog.TagGenerics},
			Expected: "int\nnot int\n",
			Body:     genericTypeBranching,
		},
		{
			Topic:    "function value",
			Summary:  "functions are first-class values with a signature type",
			Tags:     []catalog.Tag{catalog.TagFunctions},
			Expected: "op(4, 5) = 9\n",
			Body:     functionValue,
		},
		{
			Topic:    "operator method",
			Summary:  "an Add method stands in for operator overloading",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "{4 6}\n",
			Body:     operatorMethod,
		},
		{
			Topic:       "custom release hook",
			Summary:     "an io.Closer built from a release function",
			Tags:        []catalog.Tag{catalog.TagLifetime},
			DefaultArgs: []string{"file.txt"},
			Expected:    "acquired file.txt\nreleased file.txt\n",
			Body:        customReleaseHook,
		},
		{
			Topic:    "tag dispatch",
			Summary:  "choose an implementation by a tag value derived from the type",
			Tags:     []catalog.Tag{catalog.TagDispatch, catalog.TagGenerics},
			Expected: "integral\nnot integral\n",
			Body:     tagDispatch,
		},
		{
			Topic:    "static polymorphism",
			Summary:  "a generic base calls into its type parameter",
			Tags:     []catalog.Tag{catalog.TagDispatch, catalog.TagGenerics},
			Expected: "Derived impl\n",
			Body:     staticPolymorphism,
		},
		{
			Topic:       "named lambda",
			Summary:     "a function literal given a local name",
			Tags:        []catalog.Tag{catalog.TagFunctions},
			DefaultArgs: []string{"3"},
			Expected:    "9\n",
			Body:        namedLambda,
		},
		{
			Topic:       "bit set",
			Summary:     "parse a bit pattern and count set bits with math/bits",
			Tags:        []catalog.Tag{catalog.TagCollections},
			DefaultArgs: []string{"10101010"},
			Expected:    "10101010 set=4\n",
			Body:        bitSet,
		},
		{
			Topic:    "fixed-size array",
			Summary:  "arrays carry their length in the type",
			Tags:     []catalog.Tag{catalog.TagCollections},
			Expected: "[1 2 3] len=3\n",
			Body:     fixedSizeArray,
		},
		{
			Topic:    "in-place transform",
			Summary:  "apply a function to every element of a slice",
			Tags:     []catalog.Tag{catalog.TagCollections, catalog.TagGenerics},
			Expected: "[2 4 6]\n",
			Body:     inPlaceTransform,
		},
		{
			Topic:    "accumulate",
			Summary:  "a generic left fold",
			Tags:     []catalog.Tag{catalog.TagCollections, catalog.TagGenerics},
			Expected: "6\n",
			Body:     accumulate,
		},
		{
			Topic:    "parallel reduce",
			Summary:  "sum chunks concurrently with errgroup and combine",
			Tags:     []catalog.Tag{catalog.TagConcurrency, catalog.TagCollections},
			Expected: "10\n",
			Body:     parallelReduce,
		},
		{
			Topic:    "slice view",
			Summary:  "a slice is a view over an array without copying",
			Tags:     []catalog.Tag{catalog.TagCollections},
			Expected: "2 3 4\n",
			Body:     sliceView,
		},
		{
			Topic:    "named field initialization",
			Summary:  "struct literals with field names",
			Tags:     []catalog.Tag{catalog.TagTypes},
			Expected: "{X:5 Y:10}\n",
			Body:     namedFieldInitialization,
		},
		{
			Topic:    "asynchronous task",
			Summary:  "a goroutine-backed task the caller awaits later",
			Tags:     []catalog.Tag{catalog.TagConcurrency},
			Expected: "caller continued\ntask result: done\n",
			Body:     asynchronousTask,
		},
		{
			Topic:       "checked downcast",
			Summary:     "a comma-ok type assertion from interface to concrete type",
			Tags:        []catalog.Tag{catalog.TagDispatch, catalog.TagTypes},
			DefaultArgs: []string{"derived"},
			Expected:    "downcast ok: true\nrect\n",
			Body:        checkedDowncast,
		},
		{
			Topic:    "compile-time constant",
			Summary:  "constant expressions are evaluated by the compiler",
			Tags:     []catalog.Tag{catalog.TagCompileTime},
			Expected: "42\n",
			Body:     compileTimeConstant,
		},
		{
			Topic:       "branch hint",
			Summary:     "plain conditionals; hot paths come from profile-guided optimization",
			Tags:        []catalog.Tag{catalog.TagFunctions},
			DefaultArgs: []string{"1"},
			Expected:    "positive\n",
			Body:        branchHint,
		},
		{
			Topic:    "type constraints",
			Summary:  "an interface constraint restricts type arguments to numbers",
			Tags:     []catalog.Tag{catalog.TagGenerics},
			Expected: "2 2.5\n",
			Body:     typeConstraints,
		},
		{
			Topic:    "variadic fold",
			Summary:  "a variadic generic function folds its arguments",
			Tags:     []catalog.Tag{catalog.TagGenerics, catalog.TagFunctions},
			Expected: "15\n",
			Body:     variadicFold,
		},
		{
			Topic:    "generic type alias",
			Summary:  "an alias with type parameters",
			Tags:     []catalog.Tag{catalog.TagGenerics, catalog.TagTypes},
			Expected: "[]int [7]\n",
			Body:     genericTypeAlias,
		},
		{
			Topic:    "zero-value construction",
			Summary:  "every type parameter has a usable zero value",
			Tags:     []catalog.Tag{catalog.TagGenerics},
			Expected: "0 \"\" <nil>\n",
			Body:     zeroValueConstruction,
		},
		{
			Topic:    "value exchange",
			Summary:  "replace a value and return the old one",
			Tags:     []catalog.Tag{catalog.TagGenerics, catalog.TagLifetime},
			Expected: "a=0 b=10\n",
			Body:     valueExchange,
		},
		{
			Topic:    "sealed override",
			Summary:  "an unexported method seals an interface to this package",
			Tags:     []catalog.Tag{catalog.TagDispatch, catalog.TagTypes},
			Expected: "finalImpl.F\n",
			Body:     sealedOverride,
		},
	}
}

// NewRegistry returns a registry populated with the full catalogue.
func NewRegistry() *catalog.Registry {
	return catalog.NewRegistry().MustAdd(Examples()...)
}
