// Package eval implements the evaluator: it reduces a Value to its normal
// form using an Environment, and the call protocol for applying Functions
// (builtins and user-defined lambdas, including variadic parameters and
// partial application).
package eval

import (
	"log/slog"

	"github.com/mahimahi42/lispy/value"
)

// Evaluator reduces values to normal form. It holds no mutable state of
// its own beyond an optional logger; all bindings live in the
// value.Environment passed to Eval.
type Evaluator struct {
	logger *slog.Logger
}

// New creates an Evaluator. A nil logger is valid and makes logging a
// no-op.
func New(logger *slog.Logger) *Evaluator {
	return &Evaluator{logger: logger}
}

func (ev *Evaluator) log(msg string, args ...any) {
	if ev.logger != nil {
		ev.logger.Debug(msg, args...)
	}
}

// Eval reduces v to its normal form in env, implementing the evaluator's
// top-level rules:
//
//  1. A Symbol evaluates by lookup: the returned copy becomes the value of
//     the expression.
//  2. An SExpr evaluates as a combination (see evalSExpr).
//  3. Everything else (Number, String, Error, QExpr, Function) evaluates
//     to itself.
func (ev *Evaluator) Eval(env *value.Environment, v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case value.Symbol:
		return env.Get(x.Name()), nil
	case *value.List:
		if x.IsSExpr() {
			return ev.evalSExpr(env, x)
		}
		return x, nil
	default:
		return v, nil
	}
}

// evalSExpr implements SExpr reduction: inner evaluation of every child in
// index order, a leftmost-wins error sweep, the empty/unary short-circuits,
// a head-is-Function check, and application of the remainder as arguments.
func (ev *Evaluator) evalSExpr(env *value.Environment, v *value.List) (value.Value, error) {
	for i, child := range v.Children {
		reduced, err := ev.Eval(env, child)
		if err != nil {
			return nil, err
		}
		v.Children[i] = reduced
	}

	for i, child := range v.Children {
		if errVal, ok := value.GetError(child); ok {
			ev.log("sexpr error sweep", "index", i, "error", errVal.Message())
			return errVal, nil
		}
	}

	switch v.Len() {
	case 0:
		return v, nil
	case 1:
		return v.Children[0], nil
	}

	head := v.Children[0]
	fn, ok := value.GetFunction(head)
	if !ok {
		return value.NewHeadTypeError(head.Kind()), nil
	}

	args := value.NewSExpr(v.Children[1:]...)
	return ev.Apply(env, fn, args)
}
