package value_test

import (
	"testing"

	"github.com/mahimahi42/lispy/value"
)

func TestSymbolName(t *testing.T) {
	s := value.NewSymbol("add-mul")
	if s.Name() != "add-mul" {
		t.Errorf("Name() = %q, want %q", s.Name(), "add-mul")
	}
	if s.String() != "add-mul" {
		t.Errorf("String() = %q, want unquoted name", s.String())
	}
}

func TestAmpersandSymbol(t *testing.T) {
	if value.AmpersandSymbol.Name() != "&" {
		t.Errorf("AmpersandSymbol = %q, want %q", value.AmpersandSymbol.Name(), "&")
	}
}
