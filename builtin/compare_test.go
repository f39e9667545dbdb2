package builtin_test

import (
	"testing"

	"github.com/mahimahi42/lispy/value"
)

func wantBool(t *testing.T, got value.Value, err error, want bool) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := value.GetNumber(got)
	if !ok {
		t.Fatalf("got %v, want a Number", got)
	}
	wantN := value.Number(0)
	if want {
		wantN = 1
	}
	if n != wantN {
		t.Errorf("got %v, want %v", n, wantN)
	}
}

func TestEqCompsStructurally(t *testing.T) {
	env, ev := newEnv(t)
	a := value.NewQExpr(value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))
	b := value.NewQExpr(value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))
	got, err := call(t, env, ev, "==", a, b)
	wantBool(t, got, err, true)
}

func TestEqDifferentKindsNeverEqual(t *testing.T) {
	env, ev := newEnv(t)
	s := value.NewSExpr(value.NewNumber(1))
	q := value.NewQExpr(value.NewNumber(1))
	got, err := call(t, env, ev, "==", s, q)
	wantBool(t, got, err, false)
}

func TestNeIsNegationOfEq(t *testing.T) {
	env, ev := newEnv(t)
	got, err := call(t, env, ev, "!=", value.NewNumber(1), value.NewNumber(2))
	wantBool(t, got, err, true)
}

func TestOrderingOperators(t *testing.T) {
	env, ev := newEnv(t)

	cases := []struct {
		op   string
		a, b int64
		want bool
	}{
		{">", 5, 3, true},
		{">", 3, 5, false},
		{"<", 3, 5, true},
		{">=", 5, 5, true},
		{"<=", 4, 5, true},
		{"<=", 6, 5, false},
	}
	for _, c := range cases {
		got, err := call(t, env, ev, c.op, value.NewNumber(c.a), value.NewNumber(c.b))
		wantBool(t, got, err, c.want)
	}
}

func TestOrderingRejectsNonNumber(t *testing.T) {
	env, ev := newEnv(t)
	got, err := call(t, env, ev, ">", value.NewString("a"), value.NewNumber(1))
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	if !value.IsError(got) {
		t.Errorf("result = %v, want a Type Error value", got)
	}
}
