package builtin

import "github.com/mahimahi42/lispy/value"

// bindVars implements the shared logic behind `def` (global definition)
// and `=` (local definition): args.Children[0] must be a QExpr of
// Symbols naming exactly as many targets as there are remaining
// arguments to bind them to.
func bindVars(name string, env *value.Environment, args *value.List, put func(name string, v value.Value)) (value.Value, error) {
	if err := checkMinArity(name, args, 1); err != nil {
		return err, nil
	}
	if err := checkKind(name, args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	names, _ := value.GetQExpr(args.Children[0])
	vals := args.Children[1:]
	if names.Len() != len(vals) {
		return value.NewArityError(name, len(vals), names.Len()), nil
	}
	for i, c := range names.Children {
		sym, ok := value.GetSymbol(c)
		if !ok {
			return value.NewTypeError(name, i, c.Kind(), value.KindSymbol), nil
		}
		put(sym.Name(), vals[i])
	}
	return value.NewSExpr(), nil
}

func builtinDef(_ value.Evaluator, env *value.Environment, args *value.List) (value.Value, error) {
	return bindVars("def", env, args, env.Def)
}

func builtinPut(_ value.Evaluator, env *value.Environment, args *value.List) (value.Value, error) {
	return bindVars("=", env, args, env.Put)
}
