package either

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TypeName is the type tag reported by every Either.
const TypeName = "Either"

// Typed is implemented by containers that report a type tag.
type Typed interface {
	Type() string
}

// Functor is a container exposing a structure-preserving map.
// Sequence and Traverse require it of the value they invert.
type Functor interface {
	Typed
	Fmap(fn func(any) any) Functor
}

// Inspector is implemented by values with their own debug representation.
type Inspector interface {
	Inspect() string
}

type branch uint8

const (
	left branch = iota
	right
)

func (b branch) String() string {
	if b == right {
		return "Right"
	}
	return "Left"
}

// Either holds a value tagged Left or Right. The zero value is Left(nil).
type Either struct {
	branch branch
	value  any
}

// Left creates an Either with a left value.
func Left(value any) Either {
	return Either{branch: left, value: value}
}

// Right creates an Either with a right value.
func Right(value any) Either {
	return Either{branch: right, value: value}
}

// Of lifts a value into a Right.
func Of(value any) Either {
	return Right(value)
}

// New builds an Either from a pair where exactly one side is non-nil.
// (x, nil) yields Left(x) and (nil, x) yields Right(x).
func New(leftValue, rightValue any) (Either, error) {
	l, r := isNil(leftValue), isNil(rightValue)
	switch {
	case l && r:
		return Either{}, typeError("New", "exactly one of left or right must be non-nil, got neither")
	case !l && !r:
		return Either{}, typeError("New", "exactly one of left or right must be non-nil, got both")
	case r:
		return Left(leftValue), nil
	default:
		return Right(rightValue), nil
	}
}

// FromError returns Left(err) when err is non-nil, otherwise Right(value).
func FromError(value any, err error) Either {
	if err != nil {
		return Left(err)
	}
	return Right(value)
}

// Try runs fn and captures its outcome with FromError.
func Try(fn func() (any, error)) Either {
	return FromError(fn())
}

// IsLeft returns true if the Either holds a left value.
func (e Either) IsLeft() bool {
	return e.branch == left
}

// IsRight returns true if the Either holds a right value.
func (e Either) IsRight() bool {
	return e.branch == right
}

// Type returns TypeName regardless of branch.
func (e Either) Type() string {
	return TypeName
}

// Value returns the wrapped value regardless of branch.
// Use Either for branch-aware extraction.
func (e Either) Value() any {
	return e.value
}

// Of forwards to the package-level Of.
func (e Either) Of(value any) Either {
	return Of(value)
}

// Pure returns the package-level Of itself.
func (e Either) Pure() func(any) Either {
	return Of
}

// Inspect returns "Either.Left <repr>" or "Either.Right <repr>".
func (e Either) Inspect() string {
	return TypeName + "." + e.branch.String() + " " + repr(e.value)
}

// String implements fmt.Stringer.
func (e Either) String() string {
	return e.Inspect()
}

// Either eliminates the sum: onLeft receives a left value, onRight a right
// one. Both handlers are validated before dispatch.
func (e Either) Either(onLeft, onRight any) (any, error) {
	l, err := lift("Either", "onLeft", onLeft)
	if err != nil {
		return nil, err
	}
	r, err := lift("Either", "onRight", onRight)
	if err != nil {
		return nil, err
	}
	if e.branch == right {
		return r(e.value)
	}
	return l(e.value)
}

// Equals reports whether other is an Either on the same branch holding a
// deeply equal value. It never fails.
func (e Either) Equals(other any) bool {
	o, ok := asEither(other)
	if !ok {
		return false
	}
	return e.Equal(o)
}

// Equal is the typed form of Equals. Nested Eithers compare through it.
func (e Either) Equal(o Either) bool {
	return e.branch == o.branch && cmp.Equal(e.value, o.value, equalOptions)
}

// Swap exchanges the branches, keeping the value.
func (e Either) Swap() Either {
	if e.branch == right {
		return Left(e.value)
	}
	return Right(e.value)
}

// Funcs are equal only when they are the same func value. Closures and
// method values built by separate evaluations differ even when they share
// code.
var equalOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
	cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
}

func bothFuncs(x, y any) bool {
	return reflect.ValueOf(x).Kind() == reflect.Func && reflect.ValueOf(y).Kind() == reflect.Func
}

func sameFunc(x, y any) bool {
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	return vx.Type() == vy.Type() && funcValue(vx) == funcValue(vy)
}

// funcValue returns the word a func variable holds: the closure it refers
// to, or nil. Pointer reports only the code address, which closures of one
// literal share.
func funcValue(v reflect.Value) unsafe.Pointer {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return *(*unsafe.Pointer)(p.UnsafePointer())
}

func asEither(v any) (Either, bool) {
	switch x := v.(type) {
	case Either:
		return x, true
	case *Either:
		if x != nil {
			return *x, true
		}
	}
	return Either{}, false
}

func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case Inspector:
		return x.Inspect()
	case string:
		return strconv.Quote(x)
	}
	return fmt.Sprintf("%v", v)
}
