package either

import (
	"errors"
	"fmt"
)

// ErrType is matched by every contract violation reported by this package.
var ErrType = errors.New("either: type error")

// TypeError reports a misuse of an Either operation.
type TypeError struct {
	Op     string `json:"op"`
	Reason string `json:"reason"`
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("either.%s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrType or another TypeError for the same Op.
func (e *TypeError) Is(target error) bool {
	if target == ErrType {
		return true
	}
	if t, ok := target.(*TypeError); ok {
		return e.Op == t.Op
	}
	return false
}

func typeError(op, format string, args ...any) *TypeError {
	return &TypeError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// Must panics if err is not nil, otherwise returns e.
func Must(e Either, err error) Either {
	if err != nil {
		panic(err)
	}
	return e
}
