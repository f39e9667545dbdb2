package builtin

import (
	"fmt"
	"os"

	"github.com/mahimahi42/lispy/value"
)

// builtinPrint writes each (already-evaluated) argument to standard
// output separated by a space, followed by a newline.
func builtinPrint(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	for i, c := range args.Children {
		if i > 0 {
			fmt.Fprint(os.Stdout, " ")
		}
		_, _ = value.Print(os.Stdout, c)
	}
	fmt.Fprintln(os.Stdout)
	return value.NewSExpr(), nil
}

// builtinError returns an Error value carrying the given String's
// contents verbatim. It uses the non-formatting constructor deliberately:
// a user-supplied message must never be interpreted as a format string.
func builtinError(_ value.Evaluator, _ *value.Environment, args *value.List) (value.Value, error) {
	if err := checkArity("error", args, 1); err != nil {
		return err, nil
	}
	if err := checkKind("error", args, 0, value.KindString); err != nil {
		return err, nil
	}
	s, _ := value.GetString(args.Children[0])
	return value.NewErrorValue(s.Value()), nil
}
