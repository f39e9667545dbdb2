package builtin

import (
	"fmt"
	"os"

	"github.com/mahimahi42/lispy/reader"
	"github.com/mahimahi42/lispy/value"
)

// builtinLoad parses the named file and evaluates each top-level
// expression in env, in order. An Error produced by any expression is
// printed (not propagated); a parse failure is wrapped as a Load Error
// instead of aborting the process.
func builtinLoad(ev value.Evaluator, env *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("load", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("load", args, 0, value.KindString); err != nil {
		return err, nil
	}
	path, _ := value.GetString(args.Children[0])

	f, err := os.Open(path.Value())
	if err != nil {
		return value.NewLoadError(path.Value(), err), nil
	}
	defer f.Close()

	exprs, err := reader.New().ReadProgram(f)
	if err != nil {
		return value.NewLoadError(path.Value(), err), nil
	}

	for _, expr := range exprs {
		result, _ := ev.Eval(env, expr)
		if errVal, ok := value.GetError(result); ok {
			fmt.Fprintln(os.Stdout, errVal.String())
		}
	}
	return value.NewSExpr(), nil
}
