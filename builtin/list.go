package builtin

import "github.com/mahimahi42/lispy/value"

// builtinList wraps its (already-evaluated) arguments into a new QExpr
// holding the same child values.
func builtinList(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	return value.NewQExpr(args.Children...), nil
}

// builtinHead returns a one-element QExpr holding the first child of its
// sole QExpr argument.
func builtinHead(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("head", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("head", args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	if err := checkNotEmpty("head", args, 0); err != nil {
		return err, nil
	}
	l, _ := value.GetQExpr(args.Children[0])
	return value.NewQExpr(l.Children[0]), nil
}

// builtinTail returns its sole QExpr argument with its first child
// removed.
func builtinTail(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("tail", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("tail", args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	if err := checkNotEmpty("tail", args, 0); err != nil {
		return err, nil
	}
	l, _ := value.GetQExpr(args.Children[0])
	if _, err := l.Pop(0); err != nil {
		return value.AsValue(err), nil
	}
	return l, nil
}

// builtinInit returns its sole QExpr argument with its last child
// removed.
func builtinInit(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("init", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("init", args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	if err := checkNotEmpty("init", args, 0); err != nil {
		return err, nil
	}
	l, _ := value.GetQExpr(args.Children[0])
	if _, err := l.Pop(l.Len() - 1); err != nil {
		return value.AsValue(err), nil
	}
	return l, nil
}

// builtinLen reports the number of children in its sole QExpr argument.
func builtinLen(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("len", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("len", args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	l, _ := value.GetQExpr(args.Children[0])
	return value.NewNumber(int64(l.Len())), nil
}

// builtinCons prepends a single value onto the front of a QExpr.
func builtinCons(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("cons", args, 2); err != nil {
		return err, nil
	}
	if err := checkKind("cons", args, 1, value.KindQExpr); err != nil {
		return err, nil
	}
	l, _ := value.GetQExpr(args.Children[1])
	children := append([]value.Value{args.Children[0]}, l.Children...)
	return value.NewQExpr(children...), nil
}

// builtinJoin concatenates any number of QExpr arguments, in order, into
// a single QExpr.
func builtinJoin(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	var children []value.Value
	for i, c := range args.Children {
		if err := checkKind("join", args, i, value.KindQExpr); err != nil {
			return err, nil
		}
		l, _ := value.GetQExpr(c)
		children = append(children, l.Children...)
	}
	return value.NewQExpr(children...), nil
}

// builtinEval retags its sole QExpr argument as an SExpr and evaluates
// it in env, recursing back into the evaluator.
func builtinEval(ev value.Evaluator, env *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("eval", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("eval", args, 0, value.KindQExpr); err != nil {
		return err, nil
	}
	l, _ := value.GetQExpr(args.Children[0])
	return ev.Eval(env, l.RetagAsSExpr())
}
