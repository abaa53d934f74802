package laws

import (
	"errors"

	"github.com/authcorp/libs/go/src/algebraic/either"
	"pgregory.net/rapid"
)

// Law names accepted by Config.Laws.
const (
	LawSetoidReflexivity       = "setoid/reflexivity"
	LawSetoidSymmetry          = "setoid/symmetry"
	LawSetoidTransitivity      = "setoid/transitivity"
	LawFunctorIdentity         = "functor/identity"
	LawFunctorComposition      = "functor/composition"
	LawApplyComposition        = "apply/composition"
	LawApplicativeIdentity     = "applicative/identity"
	LawApplicativeHomomorphism = "applicative/homomorphism"
	LawApplicativeInterchange  = "applicative/interchange"
	LawChainAssociativity      = "chain/associativity"
	LawMonadLeftIdentity       = "monad/left-identity"
	LawMonadRightIdentity      = "monad/right-identity"
	LawTraversableInversion    = "traversable/inversion"
)

type sample struct {
	x, y int
}

var samples = rapid.Custom(func(t *rapid.T) sample {
	ints := rapid.IntRange(-1000, 1000)
	return sample{x: ints.Draw(t, "x"), y: ints.Draw(t, "y")}
})

type law struct {
	name  string
	check func(s sample) error
}

var catalogue = []law{
	{LawSetoidReflexivity, func(s sample) error {
		return onBoth(s.x, SetoidReflexivity)
	}},
	{LawSetoidSymmetry, func(s sample) error {
		return errors.Join(
			SetoidSymmetry(either.Left(s.x), either.Left(s.y)),
			SetoidSymmetry(either.Right(s.x), either.Right(s.y)),
			SetoidSymmetry(either.Left(s.x), either.Right(s.x)),
		)
	}},
	{LawSetoidTransitivity, func(s sample) error {
		return errors.Join(
			SetoidTransitivity(either.Left(s.x), either.Left(s.x), either.Left(s.x)),
			SetoidTransitivity(either.Right(s.x), either.Right(s.x), either.Right(s.x)),
			SetoidTransitivity(either.Right(s.x), either.Right(s.y), either.Right(s.x)),
		)
	}},
	{LawFunctorIdentity, func(s sample) error {
		return onBoth(s.x, FunctorIdentity)
	}},
	{LawFunctorComposition, func(s sample) error {
		return onBoth(s.x, func(m either.Either) error {
			return FunctorComposition(m, add(s.y), mul(3))
		})
	}},
	{LawApplyComposition, func(s sample) error {
		return errors.Join(
			ApplyComposition(either.Right(add(s.y)), either.Right(mul(2)), either.Right(s.x)),
			ApplyComposition(either.Right(add(s.y)), either.Right(mul(2)), either.Left(s.x)),
			ApplyComposition(either.Left(s.x), either.Right(mul(2)), either.Right(s.y)),
		)
	}},
	{LawApplicativeIdentity, func(s sample) error {
		return onBoth(s.x, ApplicativeIdentity)
	}},
	{LawApplicativeHomomorphism, func(s sample) error {
		return ApplicativeHomomorphism(add(s.y), s.x)
	}},
	{LawApplicativeInterchange, func(s sample) error {
		return errors.Join(
			ApplicativeInterchange(either.Right(add(s.y)), s.x),
			ApplicativeInterchange(either.Left(s.y), s.x),
		)
	}},
	{LawChainAssociativity, func(s sample) error {
		return onBoth(s.x, func(m either.Either) error {
			return ChainAssociativity(m, rightAdd(s.y), leftIfNegative)
		})
	}},
	{LawMonadLeftIdentity, func(s sample) error {
		return errors.Join(
			MonadLeftIdentity(s.x, rightAdd(s.y)),
			MonadLeftIdentity(s.x, leftIfNegative),
		)
	}},
	{LawMonadRightIdentity, func(s sample) error {
		return onBoth(s.x, MonadRightIdentity)
	}},
	{LawTraversableInversion, func(s sample) error {
		return errors.Join(
			TraversableInversion(either.Right(boxOf(s.x)), boxOf),
			TraversableInversion(either.Left(s.x), boxOf),
		)
	}},
}

// Names returns every law name in evaluation order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, l := range catalogue {
		names[i] = l.name
	}
	return names
}

func onBoth(x int, check func(either.Either) error) error {
	return errors.Join(check(either.Left(x)), check(either.Right(x)))
}

func add(n int) either.Func {
	return func(v any) any { return v.(int) + n }
}

func mul(n int) either.Func {
	return func(v any) any { return v.(int) * n }
}

func rightAdd(n int) Kleisli {
	return func(v any) either.Either { return either.Right(v.(int) + n) }
}

func leftIfNegative(v any) either.Either {
	if v.(int) < 0 {
		return either.Left(v)
	}
	return either.Right(v)
}

// box is the container the suite sequences through.
type box struct {
	value any
}

func boxOf(v any) Container {
	return box{value: v}
}

func (b box) Type() string { return "Box" }

func (b box) Value() any { return b.value }

func (b box) Fmap(fn func(any) any) either.Functor {
	return box{value: fn(b.value)}
}
