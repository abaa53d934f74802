package either

import (
	"fmt"
	"reflect"
)

// Func is the canonical callable shape. Any func taking at most one
// parameter and returning at most one result is accepted wherever an
// operation expects a function; Func avoids the adapter.
type Func func(any) any

type call func(any) (any, error)

// lift validates that v is callable and returns an invoker for it.
func lift(op, name string, v any) (call, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, typeError(op, "%s must be a function, got %s", name, describe(v))
	}

	switch fn := v.(type) {
	case Func:
		return func(x any) (any, error) { return fn(x), nil }, nil
	case func(any) any:
		return func(x any) (any, error) { return fn(x), nil }, nil
	case func(any) Either:
		return func(x any) (any, error) { return fn(x), nil }, nil
	}

	t := rv.Type()
	if t.IsVariadic() || t.NumIn() > 1 || t.NumOut() > 1 {
		return nil, typeError(op, "%s must be a unary function, got %s", name, t)
	}

	return func(x any) (any, error) {
		var args []reflect.Value
		if t.NumIn() == 1 {
			arg, err := argument(op, t.In(0), x)
			if err != nil {
				return nil, err
			}
			args = []reflect.Value{arg}
		}
		out := rv.Call(args)
		if len(out) == 0 {
			return nil, nil
		}
		return result(out[0]), nil
	}, nil
}

// Invoke calls fn with arg using the same rules every operation applies
// to its function arguments.
func Invoke(fn, arg any) (any, error) {
	f, err := lift("Invoke", "fn", fn)
	if err != nil {
		return nil, err
	}
	return f(arg)
}

func argument(op string, in reflect.Type, x any) (reflect.Value, error) {
	if x == nil {
		if nilable(in.Kind()) {
			return reflect.Zero(in), nil
		}
		return reflect.Value{}, typeError(op, "cannot pass nil as %s", in)
	}
	v := reflect.ValueOf(x)
	if !v.Type().AssignableTo(in) {
		return reflect.Value{}, typeError(op, "cannot pass %s as %s", v.Type(), in)
	}
	return v, nil
}

func result(out reflect.Value) any {
	if out.Kind() == reflect.Interface && out.IsNil() {
		return nil
	}
	return out.Interface()
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether v is the nil interface or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return nilable(rv.Kind()) && rv.IsNil()
}

// describe names a value for error messages, preferring its type tag.
// Nil pointers are named by Go type.
func describe(v any) string {
	if v == nil {
		return "nil"
	}
	if x, ok := v.(Typed); ok && !isNil(v) {
		return x.Type()
	}
	return fmt.Sprintf("%T", v)
}
