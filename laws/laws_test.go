package laws_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/libs/go/src/algebraic/combinator"
	"github.com/authcorp/libs/go/src/algebraic/either"
	"github.com/authcorp/libs/go/src/algebraic/laws"
	"github.com/authcorp/libs/go/src/algebraic/testutil"
)

func mockOf(v any) laws.Container {
	return testutil.MockOf(v)
}

func plus(n int) either.Func {
	return func(v any) any { return v.(int) + n }
}

func TestLawsHold(t *testing.T) {
	double := either.Func(func(v any) any { return v.(int) * 2 })
	f := func(x any) either.Either { return either.Right(x.(int) + 2) }
	g := func(x any) either.Either { return either.Right(x.(int) + 10) }

	for _, m := range []either.Either{either.Left(10), either.Right(10)} {
		require.NoError(t, laws.SetoidReflexivity(m))
		require.NoError(t, laws.SetoidSymmetry(m, m.Swap()))
		require.NoError(t, laws.SetoidTransitivity(m, m, m))
		require.NoError(t, laws.FunctorIdentity(m))
		require.NoError(t, laws.FunctorComposition(m, plus(2), double))
		require.NoError(t, laws.ApplicativeIdentity(m))
		require.NoError(t, laws.ChainAssociativity(m, f, g))
		require.NoError(t, laws.MonadRightIdentity(m))
	}

	id := either.Right(combinator.Identity)
	require.NoError(t, laws.ApplyComposition(id, id, id))
	require.NoError(t, laws.ApplyComposition(id, id, either.Right(3)))
	require.NoError(t, laws.ApplicativeHomomorphism(combinator.Identity, 3))
	require.NoError(t, laws.ApplicativeInterchange(id, 3))
	require.NoError(t, laws.MonadLeftIdentity(3, f))
	require.NoError(t, laws.TraversableInversion(either.Right(testutil.MockOf(284)), mockOf))
	require.NoError(t, laws.TraversableInversion(either.Left("Left"), mockOf))
}

func TestFunctorCompositionDetectsImpureFunction(t *testing.T) {
	calls := 0
	counter := either.Func(func(v any) any {
		calls++
		return v.(int) + calls
	})

	err := laws.FunctorComposition(either.Right(1), counter, combinator.Identity)
	require.ErrorIs(t, err, laws.ErrViolation)

	var v *laws.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "functor composition", v.Law)
	assert.Contains(t, err.Error(), "Either.Right 2 != Either.Right 3")
}

type stuck struct{ value any }

func (s stuck) Type() string { return "Stuck" }

func (s stuck) Value() any { return s.value }

func (s stuck) Fmap(func(any) any) either.Functor { return s }

func stuckOf(v any) laws.Container { return stuck{value: v} }

func TestTraversableInversionDetectsBrokenFunctor(t *testing.T) {
	err := laws.TraversableInversion(either.Right(stuck{value: 1}), stuckOf)
	assert.ErrorIs(t, err, laws.ErrViolation)
}

func TestLawChecksSurfaceTypeErrors(t *testing.T) {
	err := laws.TraversableInversion(either.Right(1), mockOf)
	assert.ErrorIs(t, err, either.ErrType)

	err = laws.ApplyComposition(either.Right(1), either.Right(1), either.Right(1))
	assert.ErrorIs(t, err, either.ErrType)
}
