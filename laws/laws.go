// Package laws checks the algebraic laws of package either.
//
// Each check evaluates both sides of one law and returns nil when they are
// equal, a *Violation when they differ, or the *either.TypeError raised
// while evaluating them. Suite runs every check over sampled values.
package laws

import (
	"errors"
	"fmt"

	"github.com/authcorp/libs/go/src/algebraic/combinator"
	"github.com/authcorp/libs/go/src/algebraic/either"
)

// ErrViolation is matched by every *Violation.
var ErrViolation = errors.New("laws: law violated")

// Violation records the two sides of a law that did not agree.
type Violation struct {
	Law  string
	Got  any
	Want any
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("laws: %s violated: %s != %s", v.Law, show(v.Got), show(v.Want))
}

// Unwrap returns ErrViolation.
func (v *Violation) Unwrap() error {
	return ErrViolation
}

// Kleisli is a function returning an Either, as taken by Chain.
type Kleisli = func(any) either.Either

// Container is a Functor whose wrapped value can be read back.
type Container interface {
	either.Functor
	Value() any
}

func show(v any) string {
	if i, ok := v.(either.Inspector); ok {
		return i.Inspect()
	}
	return fmt.Sprintf("%v", v)
}

func expect(law string, got, want either.Either) error {
	if got.Equals(want) {
		return nil
	}
	return &Violation{Law: law, Got: got, Want: want}
}

// SetoidReflexivity checks a.Equals(a).
func SetoidReflexivity(a either.Either) error {
	if a.Equals(a) {
		return nil
	}
	return &Violation{Law: "setoid reflexivity", Got: a, Want: a}
}

// SetoidSymmetry checks a.Equals(b) == b.Equals(a).
func SetoidSymmetry(a, b either.Either) error {
	if a.Equals(b) == b.Equals(a) {
		return nil
	}
	return &Violation{Law: "setoid symmetry", Got: a, Want: b}
}

// SetoidTransitivity checks that a = b and b = c imply a = c.
func SetoidTransitivity(a, b, c either.Either) error {
	if !a.Equals(b) || !b.Equals(c) || a.Equals(c) {
		return nil
	}
	return &Violation{Law: "setoid transitivity", Got: a, Want: c}
}

// FunctorIdentity checks m.Map(identity) = m.
func FunctorIdentity(m either.Either) error {
	got, err := m.Map(combinator.Identity)
	if err != nil {
		return err
	}
	return expect("functor identity", got, m)
}

// FunctorComposition checks m.Map(x => f(g(x))) = m.Map(g).Map(f).
func FunctorComposition(m either.Either, f, g either.Func) error {
	got, err := m.Map(combinator.Compose(f, g))
	if err != nil {
		return err
	}
	mg, err := m.Map(g)
	if err != nil {
		return err
	}
	want, err := mg.Map(f)
	if err != nil {
		return err
	}
	return expect("functor composition", got, want)
}

// ApplyComposition checks a.Map(composeB).Ap(u).Ap(v) = a.Ap(u.Ap(v)),
// where a and u wrap functions.
// The right-hand side is evaluated first so that a non-function wrapped by
// a or u surfaces as a *either.TypeError.
func ApplyComposition(a, u, v either.Either) error {
	uv, err := u.Ap(v)
	if err != nil {
		return err
	}
	want, err := a.Ap(uv)
	if err != nil {
		return err
	}
	composed, err := a.Map(combinator.ComposeB)
	if err != nil {
		return err
	}
	if composed, err = composed.Ap(u); err != nil {
		return err
	}
	got, err := composed.Ap(v)
	if err != nil {
		return err
	}
	return expect("apply composition", got, want)
}

// ApplicativeIdentity checks Of(identity).Ap(v) = v.
func ApplicativeIdentity(v either.Either) error {
	got, err := either.Of(combinator.Identity).Ap(v)
	if err != nil {
		return err
	}
	return expect("applicative identity", got, v)
}

// ApplicativeHomomorphism checks Of(f).Ap(Of(x)) = Of(f(x)).
func ApplicativeHomomorphism(f either.Func, x any) error {
	got, err := either.Of(f).Ap(either.Of(x))
	if err != nil {
		return err
	}
	return expect("applicative homomorphism", got, either.Of(f(x)))
}

// ApplicativeInterchange checks u.Ap(Of(y)) = Of(f => f(y)).Ap(u).
func ApplicativeInterchange(u either.Either, y any) error {
	got, err := u.Ap(either.Of(y))
	if err != nil {
		return err
	}
	want, err := either.Of(combinator.ReverseApply(y)).Ap(u)
	if err != nil {
		return err
	}
	return expect("applicative interchange", got, want)
}

// ChainAssociativity checks m.Chain(f).Chain(g) = m.Chain(x => f(x).Chain(g)).
func ChainAssociativity(m either.Either, f, g Kleisli) error {
	mf, err := m.Chain(f)
	if err != nil {
		return err
	}
	got, err := mf.Chain(g)
	if err != nil {
		return err
	}

	var inner error
	want, err := m.Chain(func(x any) either.Either {
		e, err := f(x).Chain(g)
		if err != nil {
			inner = err
		}
		return e
	})
	if err != nil {
		return err
	}
	if inner != nil {
		return inner
	}
	return expect("chain associativity", got, want)
}

// MonadLeftIdentity checks Of(x).Chain(f) = f(x).
func MonadLeftIdentity(x any, f Kleisli) error {
	got, err := either.Of(x).Chain(f)
	if err != nil {
		return err
	}
	return expect("monad left identity", got, f(x))
}

// MonadRightIdentity checks m.Chain(Of) = m.
func MonadRightIdentity(m either.Either) error {
	got, err := m.Chain(either.Of)
	if err != nil {
		return err
	}
	return expect("monad right identity", got, m)
}

// TraversableInversion checks that Sequence swaps the nesting: a Right
// holding a Container becomes that Container holding a Right of its value,
// and a Left is wrapped by of unchanged.
func TraversableInversion(m either.Either, of func(any) Container) error {
	out, err := m.Sequence(of)
	if err != nil {
		return err
	}
	got, ok := out.(Container)
	if !ok {
		return &Violation{Law: "traversable inversion", Got: out, Want: "a Container"}
	}

	var want Container
	if m.IsRight() {
		inner, ok := m.Value().(Container)
		if !ok {
			return &Violation{Law: "traversable inversion", Got: m.Value(), Want: "a Container"}
		}
		want = of(either.Right(inner.Value()))
		if got.Type() != inner.Type() {
			return &Violation{Law: "traversable inversion", Got: got.Type(), Want: inner.Type()}
		}
	} else {
		want = of(m)
	}

	inverted, ok := got.Value().(either.Either)
	expected, ok2 := want.Value().(either.Either)
	if !ok || !ok2 {
		return &Violation{Law: "traversable inversion", Got: got.Value(), Want: want.Value()}
	}
	return expect("traversable inversion", inverted, expected)
}
