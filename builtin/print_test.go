package builtin_test

import (
	"bufio"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/mahimahi42/lispy/value"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	var sb strings.Builder
	_, _ = io.Copy(&sb, bufio.NewReader(r))
	return sb.String()
}

func TestPrintWritesArgsSpaceSeparated(t *testing.T) {
	env, ev := newEnv(t)
	out := captureStdout(t, func() {
		if _, err := call(t, env, ev, "print", value.NewNumber(1), value.NewString("a")); err != nil {
			t.Fatalf("print: %v", err)
		}
	})
	if want := "1 \"a\"\n"; out != want {
		t.Errorf("print output = %q, want %q", out, want)
	}
}

func TestErrorBuiltinReturnsErrorValue(t *testing.T) {
	env, ev := newEnv(t)
	got, err := call(t, env, ev, "error", value.NewString("boom"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	errVal, ok := value.GetError(got)
	if !ok || errVal.Message() != "boom" {
		t.Errorf("error result = %v, want Error{boom}", got)
	}
}

// TestErrorBuiltinDoesNotInterpretPercent guards against the
// format-string hazard flagged in the design notes: a user message
// containing '%' must be carried verbatim, never treated as a format
// string.
func TestErrorBuiltinDoesNotInterpretPercent(t *testing.T) {
	env, ev := newEnv(t)
	got, err := call(t, env, ev, "error", value.NewString("100%s failure"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	errVal, ok := value.GetError(got)
	if !ok || errVal.Message() != "100%s failure" {
		t.Errorf("error result = %v, want the message verbatim", got)
	}
}
