package builtin

import "github.com/mahimahi42/lispy/value"

// numbers type-checks every argument as a Number and returns them as a
// plain slice for folding. Its error return is a plain Go error (an
// internal helper, not itself a builtin), so callers must convert a
// non-nil result with value.AsValue before handing it back as a builtin's
// result — a builtin itself must never return a Lispy-level failure
// through its own Go error return (see eval.evalSExpr's per-child loop).
func numbers(name string, args *value.List) ([]value.Number, error) {
	if err := checkMinArity(name, args, 1); err != nil {
		return nil, err
	}
	out := make([]value.Number, args.Len())
	for i, c := range args.Children {
		n, ok := value.GetNumber(c)
		if !ok {
			return nil, value.NewTypeError(name, i, c.Kind(), value.KindNumber)
		}
		out[i] = n
	}
	return out, nil
}

// fold left-to-right reduces ns with op, seeding the accumulator from
// ns[0] and, when ns has a single element, applying unary to it instead
// (the unary-minus-as-negation convention).
func fold(ns []value.Number, op func(a, b value.Number) (value.Number, error), unary func(value.Number) value.Number) (value.Value, error) {
	if len(ns) == 1 {
		if unary != nil {
			return unary(ns[0]), nil
		}
		return ns[0], nil
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		next, err := op(acc, n)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

func builtinAdd(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	ns, err := numbers("+", args)
	if err != nil {
		return value.AsValue(err), nil
	}
	// op never fails, so fold always returns a nil error here.
	return fold(ns, func(a, b value.Number) (value.Number, error) {
		return a + b, nil
	}, nil)
}

func builtinSub(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	ns, err := numbers("-", args)
	if err != nil {
		return value.AsValue(err), nil
	}
	return fold(ns, func(a, b value.Number) (value.Number, error) {
		return a - b, nil
	}, func(n value.Number) value.Number { return -n })
}

func builtinMul(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	ns, err := numbers("*", args)
	if err != nil {
		return value.AsValue(err), nil
	}
	return fold(ns, func(a, b value.Number) (value.Number, error) {
		return a * b, nil
	}, nil)
}

func builtinDiv(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	ns, err := numbers("/", args)
	if err != nil {
		return value.AsValue(err), nil
	}
	v, err := fold(ns, func(a, b value.Number) (value.Number, error) {
		if b == 0 {
			return 0, value.NewDivisionByZeroError()
		}
		return a / b, nil
	}, nil)
	if err != nil {
		return value.AsValue(err), nil
	}
	return v, nil
}

func builtinMod(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	ns, err := numbers("%", args)
	if err != nil {
		return value.AsValue(err), nil
	}
	v, err := fold(ns, func(a, b value.Number) (value.Number, error) {
		if b == 0 {
			return 0, value.NewDivisionByZeroError()
		}
		return a % b, nil
	}, nil)
	if err != nil {
		return value.AsValue(err), nil
	}
	return v, nil
}
