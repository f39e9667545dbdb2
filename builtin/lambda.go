package builtin

import "github.com/mahimahi42/lispy/value"

// builtinLambda constructs a Lambda Function from a formals QExpr and a
// body QExpr.
func builtinLambda(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity(`\`, args, 2); err != nil {
		return err, nil
	}
	if err := checkKind(`\`, args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	if err := checkKind(`\`, args, 1, value.KindQExpr); err != nil {
		return err, nil
	}
	formals, _ := value.GetQExpr(args.Children[0])
	body, _ := value.GetQExpr(args.Children[1])
	fn, err := value.NewLambda(formals, body)
	if err != nil {
		return value.AsValue(err), nil
	}
	return fn, nil
}

// builtinFun is sugar for naming a lambda in one step:
// (fun {name formal...} body) is equivalent to (def {name} (\ {formal...} body)).
func builtinFun(ev value.Evaluator, env *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("fun", args, 2); err != nil {
		return err, nil
	}
	if err := checkKind("fun", args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	if err := checkKind("fun", args, 1, value.KindQExpr); err != nil {
		return err, nil
	}
	spec, _ := value.GetQExpr(args.Children[0])
	if spec.Len() < 1 {
		return value.NewEmptyArgumentError("fun", 0), nil
	}
	nameSym, ok := value.GetSymbol(spec.Children[0])
	if !ok {
		return value.NewTypeError("fun", 0, spec.Children[0].Kind(), value.KindSymbol), nil
	}
	formals := value.NewQExpr(spec.Children[1:]...)
	body, _ := value.GetQExpr(args.Children[1])
	fn, err := value.NewLambda(formals, body)
	if err != nil {
		return value.AsValue(err), nil
	}
	env.Def(nameSym.Name(), fn)
	return value.NewSExpr(), nil
}
