package builtin

import "github.com/mahimahi42/lispy/value"

func numberAsInt(name string, v value.Value, pos int) (int64, error) {
	n, ok := value.GetNumber(v)
	if !ok {
		return 0, value.NewTypeError(name, pos, v.Kind(), value.KindNumber)
	}
	return int64(n), nil
}

func boolNumber(b bool) value.Value {
	if b {
		return value.NewNumber(1)
	}
	return value.NewNumber(0)
}

// builtinEq reports structural equality of its two arguments, which may
// be of any kind (see value.IsEqual).
func builtinEq(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("==", args, 2); err != nil {
		return err, nil
	}
	return boolNumber(value.IsEqual(args.Children[0], args.Children[1])), nil
}

// builtinNe is the negation of builtinEq.
func builtinNe(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("!=", args, 2); err != nil {
		return err, nil
	}
	return boolNumber(!value.IsEqual(args.Children[0], args.Children[1])), nil
}

func ordering(name string, args *value.List, cmp func(a, b int64) bool) (value.Value, error) {
	if err := checkArity(name, args, 2); err != nil {
		return err, nil
	}
	a, err := numberAsInt(name, args.Children[0], 0)
	if err != nil {
		return value.AsValue(err), nil
	}
	b, err := numberAsInt(name, args.Children[1], 1)
	if err != nil {
		return value.AsValue(err), nil
	}
	return boolNumber(cmp(a, b)), nil
}

func builtinGt(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	return ordering(">", args, func(a, b int64) bool { return a > b })
}

func builtinLt(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	return ordering("<", args, func(a, b int64) bool { return a < b })
}

func builtinGe(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	return ordering(">=", args, func(a, b int64) bool { return a >= b })
}

func builtinLe(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	return ordering("<=", args, func(a, b int64) bool { return a <= b })
}
