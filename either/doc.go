// Package either provides a lawful two-variant sum type.
//
// An Either holds exactly one value tagged Left or Right. By convention Left
// carries failures and Right carries successes, but neither branch constrains
// the value it holds. Operations follow the usual algebraic contracts:
//
//   - Setoid: Equals
//   - Functor: Map
//   - Apply / Applicative: Ap, Of
//   - Chain / Monad: Chain
//   - Traversable: Sequence, Traverse
//
// Function arguments are accepted as any and checked before use. Passing a
// value that is not a unary function, or a Chain callback that does not
// return an Either, yields a *TypeError matching ErrType. On a Left receiver
// Map, Ap, Chain and Sequence short-circuit: the receiver comes back
// unchanged and the callback is never invoked. Map, Chain and Sequence still
// reject non-function arguments on Left; Ap performs no validation at all.
//
// Values are immutable and every operation is pure, so an Either can be
// shared between goroutines freely.
package either
