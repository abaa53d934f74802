package either_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/src/algebraic/combinator"
	"github.com/authcorp/libs/go/src/algebraic/either"
	"github.com/authcorp/libs/go/src/algebraic/laws"
	"github.com/authcorp/libs/go/src/algebraic/testutil"
)

// TestNewMatchesConstructors verifies New picks the branch of its non-nil side.
func TestNewMatchesConstructors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.OneOf(
			rapid.Int().AsAny(),
			rapid.String().AsAny(),
			rapid.Bool().AsAny(),
		).Draw(t, "x")

		l, err := either.New(x, nil)
		if err != nil {
			t.Fatalf("New(x, nil): %v", err)
		}
		if !l.Equals(either.Left(x)) {
			t.Fatalf("New(x, nil) = %s, want Left", l)
		}

		r, err := either.New(nil, x)
		if err != nil {
			t.Fatalf("New(nil, x): %v", err)
		}
		if !r.Equals(either.Right(x)) {
			t.Fatalf("New(nil, x) = %s, want Right", r)
		}

		if _, err := either.New(x, x); err == nil {
			t.Fatal("New(x, x) should fail")
		}
	})
}

// TestCrossBranchNeverEqual verifies Left(v) and Right(v) differ for any v.
func TestCrossBranchNeverEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		if either.Left(v).Equals(either.Right(v)) || either.Right(v).Equals(either.Left(v)) {
			t.Fatalf("Left(%d) and Right(%d) compared equal", v, v)
		}
	})
}

// TestFunctorLaws verifies identity and composition on both branches.
func TestFunctorLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := testutil.IntEitherGen().Draw(t, "m")
		addend := rapid.IntRange(1, 100).Draw(t, "addend")
		multiplier := rapid.IntRange(1, 10).Draw(t, "multiplier")

		f := either.Func(func(x any) any { return x.(int) + addend })
		g := either.Func(func(x any) any { return x.(int) * multiplier })

		if err := laws.FunctorIdentity(m); err != nil {
			t.Fatal(err)
		}
		if err := laws.FunctorComposition(m, f, g); err != nil {
			t.Fatal(err)
		}
	})
}

// TestLeftShortCircuits verifies callbacks never run on a Left.
func TestLeftShortCircuits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := testutil.LeftGen(rapid.Int()).Draw(t, "m")
		spy := func(any) any { t.Fatal("callback invoked on Left"); return nil }

		if got := either.Must(m.Map(spy)); !got.Equals(m) {
			t.Fatalf("Map changed %s into %s", m, got)
		}
		if got := either.Must(m.Chain(spy)); !got.Equals(m) {
			t.Fatalf("Chain changed %s into %s", m, got)
		}
		if got := either.Must(m.Ap(rapid.Int().Draw(t, "junk"))); !got.Equals(m) {
			t.Fatalf("Ap changed %s into %s", m, got)
		}
	})
}

// TestApplicativeLaws verifies identity, homomorphism and interchange.
func TestApplicativeLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := testutil.IntEitherGen().Draw(t, "v")
		x := rapid.Int().Draw(t, "x")
		n := rapid.IntRange(-50, 50).Draw(t, "n")
		f := either.Func(func(y any) any { return y.(int) - n })

		if err := laws.ApplicativeIdentity(v); err != nil {
			t.Fatal(err)
		}
		if err := laws.ApplicativeHomomorphism(f, x); err != nil {
			t.Fatal(err)
		}
		if err := laws.ApplicativeInterchange(either.Right(f), x); err != nil {
			t.Fatal(err)
		}
		if err := laws.ApplyComposition(either.Right(f), either.Right(combinator.Identity), v); err != nil {
			t.Fatal(err)
		}
	})
}

// TestMonadLaws verifies associativity and both identities.
func TestMonadLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := testutil.IntEitherGen().Draw(t, "m")
		x := rapid.IntRange(-1000, 1000).Draw(t, "x")
		limit := rapid.IntRange(-1000, 1000).Draw(t, "limit")

		f := func(v any) either.Either { return either.Right(v.(int) + 2) }
		g := func(v any) either.Either {
			if v.(int) > limit {
				return either.Left("too big")
			}
			return either.Right(v.(int) + 10)
		}

		if err := laws.ChainAssociativity(m, f, g); err != nil {
			t.Fatal(err)
		}
		if err := laws.MonadLeftIdentity(x, g); err != nil {
			t.Fatal(err)
		}
		if err := laws.MonadRightIdentity(m); err != nil {
			t.Fatal(err)
		}
	})
}

// TestSequenceInversion verifies the outer type becomes the inner container's.
func TestSequenceInversion(t *testing.T) {
	of := func(v any) laws.Container { return testutil.MockOf(v) }

	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		if err := laws.TraversableInversion(either.Right(testutil.MockOf(x)), of); err != nil {
			t.Fatal(err)
		}
		if err := laws.TraversableInversion(either.Left(x), of); err != nil {
			t.Fatal(err)
		}
	})
}
