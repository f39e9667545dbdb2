package value_test

import (
	"testing"

	"github.com/mahimahi42/lispy/value"
)

func TestListPrint(t *testing.T) {
	s := value.NewSExpr(value.NewNumber(1), value.NewNumber(2))
	if got, want := s.String(), "(1 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	q := value.NewQExpr(value.NewNumber(1), value.NewNumber(2))
	if got, want := q.String(), "{1 2}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestListRetag(t *testing.T) {
	q := value.NewQExpr(value.NewNumber(1))
	q.RetagAsSExpr()
	if !q.IsSExpr() {
		t.Error("RetagAsSExpr should flip the kind in place")
	}
	q.RetagAsQExpr()
	if !q.IsQExpr() {
		t.Error("RetagAsQExpr should flip the kind in place")
	}
}

func TestListPop(t *testing.T) {
	l := value.NewQExpr(value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))
	v, err := l.Pop(1)
	if err != nil {
		t.Fatalf("Pop returned error: %v", err)
	}
	if n, _ := value.GetNumber(v); n != 2 {
		t.Errorf("Pop(1) = %v, want 2", v)
	}
	if l.Len() != 2 {
		t.Errorf("Len() after Pop = %d, want 2", l.Len())
	}
	if _, err := l.Pop(5); err == nil {
		t.Error("Pop with out-of-range index should error")
	}
}

func TestListIsEqualTagSensitive(t *testing.T) {
	s := value.NewSExpr(value.NewNumber(1))
	q := value.NewQExpr(value.NewNumber(1))
	if s.IsEqual(q) {
		t.Error("an SExpr must never equal a QExpr of identical contents")
	}
	q2 := value.NewQExpr(value.NewNumber(1))
	if !q.IsEqual(q2) {
		t.Error("two QExprs with equal children should be equal")
	}
}
