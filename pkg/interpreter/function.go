package interpreter

import "gz/pkg/scanner"

// Function is a registered definition: the parameter names and the
// body line sequence captured when the header was scanned. Immutable
// once created.
type Function struct {
	Name   string
	Params []string
	Body   []scanner.Line
}

// Table maps function names to definitions. It is populated in one
// forward pass and read-only while the program runs; redefining a name
// silently replaces the earlier entry.
type Table map[string]Function

// Define inserts or replaces a function.
func (t Table) Define(fn Function) {
	t[fn.Name] = fn
}

// Lookup resolves a function by name.
func (t Table) Lookup(name string) (Function, bool) {
	fn, ok := t[name]
	return fn, ok
}
