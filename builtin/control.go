package builtin

import "github.com/mahimahi42/lispy/value"

// builtinIf evaluates exactly one of its two QExpr branches, chosen by
// the truthiness of its Number condition (zero is false, nonzero is
// true), by retagging the chosen branch as an SExpr and recursing back
// into the evaluator.
func builtinIf(ev value.Evaluator, env *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("if", args, 3); err != nil {
		return err, nil
	}
	if err := checkKind("if", args, 0, value.KindNumber); err != nil {
		return err, nil
	}
	if err := checkKind("if", args, 1, value.KindQExpr); err != nil {
		return err, nil
	}
	if err := checkKind("if", args, 2, value.KindQExpr); err != nil {
		return err, nil
	}
	cond, _ := value.GetNumber(args.Children[0])
	branch := args.Children[2]
	if cond != 0 {
		branch = args.Children[1]
	}
	l, _ := value.GetQExpr(branch)
	return ev.Eval(env, l.RetagAsSExpr())
}
