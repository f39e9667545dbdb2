package value

import (
	"fmt"
	"io"
)

// Environment maps symbol names to values, with a parent link forming a
// lexical chain toward the global environment. The global environment has
// no parent; every other environment has exactly one.
type Environment struct {
	name   string
	parent *Environment
	vars   map[string]Value
}

// NewEnvironment creates an empty, parentless (global) environment.
func NewEnvironment() *Environment {
	return &Environment{name: "global", vars: make(map[string]Value)}
}

// NewChildEnvironment creates an empty environment whose parent is set to
// parent. Used wherever a lexically nested scope is needed outright; a
// Lambda's own closure environment is NOT created this way (see
// NewLambda) since its parent link must stay nil until call time.
func NewChildEnvironment(parent *Environment, name string) *Environment {
	return &Environment{name: name, parent: parent, vars: make(map[string]Value)}
}

// String returns a short debugging label naming the environment and its
// number of local bindings; environments are not themselves first-class
// Lispy values, so this exists only for ad hoc debugging callers that
// want a uniform label.
func (e *Environment) String() string {
	if e == nil {
		return "<environment:nil>"
	}
	return fmt.Sprintf("<environment:%s/%d>", e.name, len(e.vars))
}

// Parent returns the parent environment, or nil for the root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent assigns the parent link. Used exactly once per closure
// invocation: at call time, a Lambda's captured environment has its
// parent pointed at the caller's environment (the closure's dynamic
// linking point).
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// IsRoot reports whether this environment has no parent.
func (e *Environment) IsRoot() bool { return e == nil || e.parent == nil }

// Root walks the parent chain to the global environment.
func (e *Environment) Root() *Environment {
	curr := e
	for !curr.IsRoot() {
		curr = curr.parent
	}
	return curr
}

// Get looks up name, scanning local bindings first and then recursing into
// the parent. On a hit it returns a deep copy of the stored value,
// guaranteeing that no alias exists between an environment slot and any
// value returned to a caller. On a miss with no parent left, it returns an
// Unbound Symbol error value.
func (e *Environment) Get(name string) Value {
	for curr := e; curr != nil; curr = curr.parent {
		if v, found := curr.vars[name]; found {
			return Copy(v)
		}
	}
	return NewUnboundSymbolError(name)
}

// Lookup is like Get but reports whether the binding was found at all,
// without producing an error value on a miss. Callers that need to probe
// for a binding's presence without triggering an Unbound Symbol error use
// this instead of Get.
func (e *Environment) Lookup(name string) (Value, bool) {
	for curr := e; curr != nil; curr = curr.parent {
		if v, found := curr.vars[name]; found {
			return Copy(v), true
		}
	}
	return nil, false
}

// Put performs a local insert-or-replace: any previous local binding for
// name is discarded (nothing to explicitly delete under a garbage
// collector) and a deep copy of v is installed in its place.
func (e *Environment) Put(name string, v Value) { e.vars[name] = Copy(v) }

// Def walks to the root environment and performs Put there, implementing
// global definition regardless of where it is called from.
func (e *Environment) Def(name string, v Value) { e.Root().Put(name, v) }

// Names returns the locally bound names, in no particular order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}

// Print writes a short debugging label; environments are never printed as
// part of ordinary evaluation output (spec.md's print rules never render
// one), but the label is useful in error call-stack traces.
func (e *Environment) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }
