// Package testutil provides fixtures, a mock container and rapid generators
// for testing code built on package either.
package testutil

import (
	"fmt"

	"github.com/authcorp/libs/go/src/algebraic/either"
)

// MockTypeName is the type tag reported by Mock.
const MockTypeName = "Mock"

// Mock is a minimal Functor used to exercise Sequence and Traverse.
type Mock struct {
	value any
}

// MockOf wraps v in a Mock.
func MockOf(v any) Mock {
	return Mock{value: v}
}

// Type returns MockTypeName.
func (m Mock) Type() string {
	return MockTypeName
}

// Value returns the wrapped value.
func (m Mock) Value() any {
	return m.value
}

// Fmap implements either.Functor.
func (m Mock) Fmap(fn func(any) any) either.Functor {
	return Mock{value: fn(m.value)}
}

// Inspect implements either.Inspector.
func (m Mock) Inspect() string {
	if i, ok := m.value.(either.Inspector); ok {
		return "Mock " + i.Inspect()
	}
	return fmt.Sprintf("Mock %v", m.value)
}

// Typed is a value carrying only a type tag, for checks that must reject
// look-alike containers.
type Typed string

// Type returns the tag.
func (t Typed) Type() string {
	return string(t)
}
