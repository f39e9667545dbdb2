// Package builtin implements the primitive operation library: the native
// Functions installed into a fresh global environment, covering list
// manipulation, arithmetic, comparison, variable definition, lambda
// construction, conditionals, file loading, and I/O.
package builtin

import (
	"github.com/mahimahi42/lispy/value"
)

// checkArity requires args to carry exactly want children. It returns the
// failure as a *value.ErrorValue rather than a plain Go error: every
// builtin hands this straight back as its result Value (never as the
// second, Go-error, return), so a failed check never short-circuits the
// evaluator's per-child evaluation pass (spec.md §4.D.1 step 1).
func checkArity(name string, args *value.List, want int) *value.ErrorValue {
	if args.Len() != want {
		return value.NewArityError(name, args.Len(), want)
	}
	return nil
}

// checkMinArity requires args to carry at least want children.
func checkMinArity(name string, args *value.List, want int) *value.ErrorValue {
	if args.Len() < want {
		return value.NewMinArityError(name, args.Len(), want)
	}
	return nil
}

// checkKind requires the child at pos to have kind want.
func checkKind(name string, args *value.List, pos int, want value.Kind) *value.ErrorValue {
	got := args.Children[pos].Kind()
	if got != want {
		return value.NewTypeError(name, pos, got, want)
	}
	return nil
}

// checkNotEmpty requires the QExpr at pos to carry at least one child.
func checkNotEmpty(name string, args *value.List, pos int) *value.ErrorValue {
	l, ok := value.GetList(args.Children[pos])
	if !ok || l.Len() == 0 {
		return value.NewEmptyArgumentError(name, pos)
	}
	return nil
}

// Register installs every builtin in this package into env under its
// canonical name.
func Register(env *value.Environment) {
	for name, fn := range builtins {
		env.Def(name, value.NewBuiltin(name, fn))
	}
}

var builtins = map[string]value.BuiltinFunc{
	"list": builtinList,
	"head": builtinHead,
	"tail": builtinTail,
	"join": builtinJoin,
	"eval": builtinEval,
	"cons": builtinCons,
	"len":  builtinLen,
	"init": builtinInit,

	"+": builtinAdd,
	"-": builtinSub,
	"*": builtinMul,
	"/": builtinDiv,
	"%": builtinMod,

	"def": builtinDef,
	"=":   builtinPut,
	"\\":  builtinLambda,
	"fun": builtinFun,

	"if": builtinIf,

	"==": builtinEq,
	"!=": builtinNe,
	">":  builtinGt,
	"<":  builtinLt,
	">=": builtinGe,
	"<=": builtinLe,

	"load":  builtinLoad,
	"print": builtinPrint,
	"error": builtinError,
}
