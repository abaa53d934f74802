package testutil

import "github.com/authcorp/libs/go/src/algebraic/either"

// Fixture is a named value used in error tables.
type Fixture struct {
	Name  string
	Value any
}

// NonFunctions returns values that no operation accepts as a function.
func NonFunctions() []Fixture {
	var nilFunc func(any) any
	var nilEither *either.Either
	return []Fixture{
		{Name: "nil", Value: nil},
		{Name: "nil func", Value: nilFunc},
		{Name: "falsey number", Value: 0},
		{Name: "truthy number", Value: 1},
		{Name: "falsey string", Value: ""},
		{Name: "truthy string", Value: "string"},
		{Name: "false", Value: false},
		{Name: "true", Value: true},
		{Name: "slice", Value: []any{}},
		{Name: "map", Value: map[string]any{}},
		{Name: "struct", Value: struct{}{}},
		{Name: "nil *Either", Value: nilEither},
		{Name: "binary func", Value: func(a, b int) int { return a + b }},
		{Name: "variadic func", Value: func(xs ...any) any { return xs }},
	}
}
