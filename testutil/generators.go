package testutil

import (
	"github.com/authcorp/libs/go/src/algebraic/either"
	"pgregory.net/rapid"
)

// EitherGen generates Left or Right values. Drawn values are stored as
// untyped payloads, so a Left from leftGen and a Right from rightGen may
// hold different Go types.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[either.Either] {
	return rapid.Custom(func(t *rapid.T) either.Either {
		if rapid.Bool().Draw(t, "isRight") {
			return either.Right(rightGen.Draw(t, "right"))
		}
		return either.Left(leftGen.Draw(t, "left"))
	})
}

// LeftGen generates Left values only, boxing each draw as an any payload.
func LeftGen[L any](leftGen *rapid.Generator[L]) *rapid.Generator[either.Either] {
	return rapid.Custom(func(t *rapid.T) either.Either {
		return either.Left(leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right values only, boxing each draw as an any payload.
func RightGen[R any](rightGen *rapid.Generator[R]) *rapid.Generator[either.Either] {
	return rapid.Custom(func(t *rapid.T) either.Either {
		return either.Right(rightGen.Draw(t, "right"))
	})
}

// IntEitherGen generates Left and Right values over small ints. Payloads
// are plain int, the type the law helpers assert on.
func IntEitherGen() *rapid.Generator[either.Either] {
	ints := rapid.IntRange(-1000, 1000)
	return EitherGen(ints, ints)
}
