package either

// Map applies fn to a right value. A Left is returned unchanged and fn is
// never invoked, though fn must still be a function.
func (e Either) Map(fn any) (Either, error) {
	f, err := lift("Map", "fn", fn)
	if err != nil {
		return Either{}, err
	}
	if e.branch == left {
		return e, nil
	}
	v, err := f(e.value)
	if err != nil {
		return Either{}, err
	}
	return Right(v), nil
}

// Fmap is Map for callers holding a Func. It implements Functor.
func (e Either) Fmap(fn func(any) any) Functor {
	if e.branch == left {
		return e
	}
	return Right(fn(e.value))
}

// Bimap maps whichever branch is active. Both functions are validated
// before dispatch.
func (e Either) Bimap(onLeft, onRight any) (Either, error) {
	l, err := lift("Bimap", "onLeft", onLeft)
	if err != nil {
		return Either{}, err
	}
	r, err := lift("Bimap", "onRight", onRight)
	if err != nil {
		return Either{}, err
	}
	if e.branch == right {
		v, err := r(e.value)
		if err != nil {
			return Either{}, err
		}
		return Right(v), nil
	}
	v, err := l(e.value)
	if err != nil {
		return Either{}, err
	}
	return Left(v), nil
}

// Ap applies the function held by a Right receiver to the value held by
// other, which must be an Either. A Right(fn) applied to a Left yields that
// Left. A Left receiver is returned unchanged without looking at other.
func (e Either) Ap(other any) (Either, error) {
	if e.branch == left {
		return e, nil
	}
	f, err := lift("Ap", "wrapped value", e.value)
	if err != nil {
		return Either{}, err
	}
	o, ok := asEither(other)
	if !ok {
		return Either{}, typeError("Ap", "argument must be an %s, got %s", TypeName, describe(other))
	}
	if o.branch == left {
		return o, nil
	}
	v, err := f(o.value)
	if err != nil {
		return Either{}, err
	}
	return Right(v), nil
}

// Chain applies fn, which must return an Either, to a right value and
// returns its result directly. A Left is returned unchanged.
func (e Either) Chain(fn any) (Either, error) {
	f, err := lift("Chain", "fn", fn)
	if err != nil {
		return Either{}, err
	}
	if e.branch == left {
		return e, nil
	}
	out, err := f(e.value)
	if err != nil {
		return Either{}, err
	}
	next, ok := asEither(out)
	if !ok {
		return Either{}, typeError("Chain", "fn must return an %s, got %s", TypeName, describe(out))
	}
	return next, nil
}

// Sequence inverts an Either wrapping a Functor into that Functor wrapping
// an Either. A Right's value must implement Functor. A Left is handed to
// of as is, and its value is never inspected.
func (e Either) Sequence(of any) (any, error) {
	pure, err := lift("Sequence", "of", of)
	if err != nil {
		return nil, err
	}
	if e.branch == left {
		return pure(e)
	}
	inner, ok := e.value.(Functor)
	if !ok {
		return nil, typeError("Sequence", "right value must implement Functor, got %s", describe(e.value))
	}
	return inner.Fmap(toRight), nil
}

// Traverse maps fn, which must return a Functor, over a right value and
// inverts the result. A Left is handed to of as is.
func (e Either) Traverse(of, fn any) (any, error) {
	pure, err := lift("Traverse", "of", of)
	if err != nil {
		return nil, err
	}
	f, err := lift("Traverse", "fn", fn)
	if err != nil {
		return nil, err
	}
	if e.branch == left {
		return pure(e)
	}
	out, err := f(e.value)
	if err != nil {
		return nil, err
	}
	inner, ok := out.(Functor)
	if !ok {
		return nil, typeError("Traverse", "fn must return a Functor, got %s", describe(out))
	}
	return inner.Fmap(toRight), nil
}

func toRight(v any) any {
	return Right(v)
}
