package interpreter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gz/pkg/scanner"
)

const (
	// DefaultEntry is the conventional entry-point name.
	DefaultEntry = "main"

	// DefaultMaxDepth bounds the call depth so unbounded recursion
	// fails with ErrRecursionLimit instead of exhausting the host
	// stack.
	DefaultMaxDepth = 1000
)

// Interpreter executes GZ programs: one forward registration pass over
// the token lines, a write-once function table, and a single live
// scope frame with snapshot/restore call semantics.
type Interpreter struct {
	funcs Table
	scope *Scope
	line  int // current line number for diagnostics

	entry    string
	entryRan bool // the entry function auto-invokes at most once

	out    io.Writer
	errOut io.Writer

	depth    int // current call depth
	maxDepth int
	steps    int // loop iterations executed
	maxSteps int // 0 => unlimited

	processed func(source, id string)
}

type Option func(*Interpreter)

// WithWriter sets the output writer for sulat statements.
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithErrWriter sets the writer for runtime diagnostics.
func WithErrWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.errOut = w }
}

// WithMaxDepth sets the call-depth budget.
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithMaxSteps sets a maximum number of loop iterations before the run
// fails with ErrMaxStepsExceeded (0 = unlimited).
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithEntry overrides the entry-point name. The empty string disables
// auto-invocation; embedders can then call Invoke themselves after
// Run has registered every definition.
func WithEntry(name string) Option {
	return func(i *Interpreter) { i.entry = name }
}

// WithProcessedHook installs the collaborator notification emitted
// after a full top-level run. The hook receives the raw source text
// and a source identifier; it must return promptly and its outcome is
// never inspected.
func WithProcessedHook(fn func(source, id string)) Option {
	return func(i *Interpreter) { i.processed = fn }
}

// New creates an Interpreter.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		funcs:    make(Table),
		scope:    NewScope(),
		entry:    DefaultEntry,
		maxDepth: DefaultMaxDepth,
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}
	if it.errOut == nil {
		it.errOut = os.Stderr
	}

	return it
}

// Run normalizes src, registers every top-level definition in one
// forward pass, and auto-invokes the entry function the moment its
// definition is registered. After the pass completes the processed
// hook, if any, is notified. The returned error is non-nil only for
// fatal conditions (resource budgets); ordinary runtime diagnostics
// are reported and execution continues.
func (i *Interpreter) Run(src, sourceID string) error {
	lines := scanner.Scan(src)

	if err := i.register(lines); err != nil {
		return err
	}

	if i.processed != nil {
		i.processed(src, sourceID)
	}

	return nil
}

// register is the single forward pass over the top-level lines.
// Because registration and entry-point invocation are interleaved,
// functions defined after the entry point in the source are not yet
// visible while it runs.
func (i *Interpreter) register(lines []scanner.Line) error {
	idx := 0
	for idx < len(lines) {
		ln := lines[idx]
		i.line = ln.Num

		head, rest := scanner.Cut(ln.Content)
		if kw, ok := scanner.Lookup(head); !ok || kw != scanner.SIMULA {
			idx++
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			i.reportf("Function definition missing a name")
			idx++
			continue
		}

		body, next := scanner.CollectBody(lines, idx+1, ln.Indent)
		i.funcs.Define(Function{Name: fields[0], Params: fields[1:], Body: body})
		idx = next

		if i.entry != "" && fields[0] == i.entry && !i.entryRan {
			i.entryRan = true
			if _, err := i.Invoke(i.entry, nil); err != nil {
				return err
			}
		}
	}

	return nil
}

// Invoke calls a registered function with the given argument values.
// An unregistered name is reported and yields wala.
func (i *Interpreter) Invoke(name string, args []Value) (Value, error) {
	fn, ok := i.funcs.Lookup(name)
	if !ok {
		i.reportf("Function '%s' not defined", name)
		return Null, nil
	}

	return i.call(fn, args)
}

// call binds arguments positionally over a snapshotted frame, runs the
// body, and restores the frame on every exit path. Extra arguments are
// ignored and missing ones leave their parameters unbound.
func (i *Interpreter) call(fn Function, args []Value) (Value, error) {
	if i.depth >= i.maxDepth {
		return Null, fmt.Errorf("calling '%s' at line %d: %w", fn.Name, i.line, ErrRecursionLimit)
	}
	i.depth++
	defer func() { i.depth-- }()

	bindings := make([]Binding, 0, len(fn.Params))
	for pos, param := range fn.Params {
		if pos < len(args) {
			bindings = append(bindings, Binding{Name: param, Value: args[pos]})
		}
	}

	snap := i.scope.EnterCall(bindings)
	defer i.scope.ExitCall(snap)

	result, _, err := i.execBlock(fn.Body)
	if err != nil {
		return Null, err
	}

	return result, nil
}

// countStep charges one loop iteration against the step budget.
func (i *Interpreter) countStep() error {
	i.steps++
	if i.maxSteps > 0 && i.steps > i.maxSteps {
		return fmt.Errorf("line %d: %w", i.line, ErrMaxStepsExceeded)
	}

	return nil
}
