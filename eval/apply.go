package eval

import "github.com/mahimahi42/lispy/value"

// Apply implements the call protocol for both shapes of Function.
//
// A Builtin is invoked directly: args (already-evaluated) are handed to
// its native operation along with env, so builtins like `eval` and `if`
// can recurse back into the evaluator.
//
// A Lambda is bound against args by walking its formals one at a time:
//
//   - While args remain, if formals has run out, that is a Too Many
//     Arguments error (expected = the lambda's initial formal count).
//   - An ordinary formal consumes exactly one argument, bound by value
//     into the lambda's own environment.
//   - The variadic marker '&' must be followed by exactly one more
//     formal; that formal is bound to a QExpr of every remaining
//     argument, and binding stops there.
//
// If, once args is exhausted, the remaining formals begin with a
// trailing unconsumed '&', that variadic formal is bound to an empty
// QExpr (no arguments were left to supply it).
//
// Completion: once formals is empty, the call is complete. The lambda's
// environment has its parent set to the caller's environment — the
// dynamic linking point described in NewLambda's doc comment — and the
// body, retagged as an SExpr, is evaluated in it. Otherwise formals still
// has unconsumed entries: Apply returns a deep copy of the lambda with
// the arguments seen so far already bound — partial application.
//
// Apply never mutates fn itself: binding walks a local copy of the
// formals list, so a Lambda can be called, or partially applied, any
// number of times from its original value.
func (ev *Evaluator) Apply(env *value.Environment, fn *value.Function, args *value.List) (value.Value, error) {
	if fn.IsBuiltin() {
		return fn.Call(ev, env, args)
	}

	bound, _ := value.Copy(fn).(*value.Function)
	lambdaEnv := bound.Env()
	formals := append([]value.Value(nil), bound.Formals().Children...)
	initialFormalCount := bound.Formals().Len()

	argIdx := 0
	for argIdx < args.Len() {
		if len(formals) == 0 {
			return value.NewTooManyArgumentsError(args.Len(), initialFormalCount), nil
		}

		formalSym, _ := value.GetSymbol(formals[0])
		if formalSym == value.AmpersandSymbol {
			if len(formals) != 2 {
				return value.NewFormatErrorAmpersand(), nil
			}
			variadicSym, _ := value.GetSymbol(formals[1])
			lambdaEnv.Put(variadicSym.Name(), value.NewQExpr(args.Children[argIdx:]...))
			argIdx = args.Len()
			formals = nil
			break
		}

		lambdaEnv.Put(formalSym.Name(), args.Children[argIdx])
		argIdx++
		formals = formals[1:]
	}

	if len(formals) > 0 {
		if sym, ok := value.GetSymbol(formals[0]); ok && sym == value.AmpersandSymbol {
			if len(formals) != 2 {
				return value.NewFormatErrorAmpersand(), nil
			}
			variadicSym, _ := value.GetSymbol(formals[1])
			lambdaEnv.Put(variadicSym.Name(), value.NewQExpr())
			formals = nil
		}
	}

	if len(formals) == 0 {
		lambdaEnv.SetParent(env)
		body := bound.Body().RetagAsSExpr()
		return ev.Eval(lambdaEnv, body)
	}

	bound.SetFormals(value.NewQExpr(formals...))
	return bound, nil
}
