package value_test

import (
	"testing"

	"github.com/mahimahi42/lispy/value"
)

func TestNewErrorValueEmpty(t *testing.T) {
	e := value.NewErrorValue("")
	if e.Message() != "unknown error" {
		t.Errorf("Message() = %q, want default fallback", e.Message())
	}
}

func TestErrorString(t *testing.T) {
	e := value.NewErrorValue("Division by zero")
	if got, want := e.String(), "Error: Division by zero"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTypedErrorConstructors(t *testing.T) {
	cases := map[string]*value.ErrorValue{
		"Unbound Symbol: 'x'": value.NewUnboundSymbolError("x"),
		"Function 'head' passed incorrect type for argument 0. Got Number, expected Q-Expression.": value.NewTypeError("head", 0, value.KindNumber, value.KindQExpr),
		"Division by zero": value.NewDivisionByZeroError(),
	}
	for want, e := range cases {
		if e.Message() != want {
			t.Errorf("Message() = %q, want %q", e.Message(), want)
		}
	}
}

func TestIsError(t *testing.T) {
	if !value.IsError(value.NewErrorValue("boom")) {
		t.Error("IsError should report true for an ErrorValue")
	}
	if value.IsError(value.NewNumber(1)) {
		t.Error("IsError should report false for a Number")
	}
}
