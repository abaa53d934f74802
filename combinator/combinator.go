// Package combinator provides the small pure functions used to state and
// check the Either laws. Each one is an either.Func, so it passes through
// the fast path of every operation.
package combinator

import "github.com/authcorp/libs/go/src/algebraic/either"

// Identity returns its argument.
func Identity(x any) any {
	return x
}

// Constant returns a function that ignores its argument and returns v.
func Constant(v any) either.Func {
	return func(any) any { return v }
}

// ComposeB is the curried composition f => g => x => f(g(x)).
// f and g may be any function accepted by either.Invoke.
func ComposeB(f any) any {
	return either.Func(func(g any) any {
		return either.Func(func(x any) any {
			return mustInvoke(f, mustInvoke(g, x))
		})
	})
}

// Compose returns x => f(g(x)).
func Compose(f, g either.Func) either.Func {
	return func(x any) any { return f(g(x)) }
}

// ReverseApply returns a function that applies its argument to x.
func ReverseApply(x any) either.Func {
	return func(f any) any { return mustInvoke(f, x) }
}

// Noop accepts nothing and returns nothing.
func Noop() {}

// mustInvoke panics with the *either.TypeError when fn cannot take x.
// Curried combinators have no error channel of their own.
func mustInvoke(fn, x any) any {
	v, err := either.Invoke(fn, x)
	if err != nil {
		panic(err)
	}
	return v
}
