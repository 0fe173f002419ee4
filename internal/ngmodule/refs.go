package ngmodule

import "moduledef-generator/internal/output"

// MaybeDeferred is a lowered value that is either usable now (Immediate) or
// wrapped in a zero-argument closure to be invoked at first use (Deferred).
type MaybeDeferred interface {
	// Expr returns the expression to emit.
	Expr() output.Expression
	isMaybeDeferred()
}

// Immediate is a value evaluated where it is emitted.
type Immediate struct {
	Value output.Expression
}

// Deferred is a closure returning the value.
type Deferred struct {
	Thunk *output.ArrowFunctionExpr
}

func (i Immediate) Expr() output.Expression { return i.Value }
func (d Deferred) Expr() output.Expression  { return d.Thunk }

func (Immediate) isMaybeDeferred() {}
func (Deferred) isMaybeDeferred()  {}

// RefsToArray lowers refs into an array of their value expressions,
// preserving order. When containsForwardDecls is set the array is returned
// from a closure so that forward references resolve lazily.
//
// Callers must not pass an empty slice; omit the key instead.
func RefsToArray(refs []Reference, containsForwardDecls bool) MaybeDeferred {
	values := output.LiteralArr(refValues(refs))
	if containsForwardDecls {
		return Deferred{Thunk: output.ArrowFn(nil, values)}
	}

	return Immediate{Value: values}
}

func refValues(refs []Reference) []output.Expression {
	values := make([]output.Expression, len(refs))
	for i, ref := range refs {
		values[i] = ref.Value
	}

	return values
}
