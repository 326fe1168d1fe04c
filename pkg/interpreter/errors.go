package interpreter

import (
	"errors"
	"fmt"
)

var (
	// ErrRecursionLimit reports call-depth exhaustion. It is the one
	// fatal, non-recoverable runtime error: a program that recurses
	// unboundedly terminates instead of exhausting the host stack.
	ErrRecursionLimit = errors.New("recursion limit exceeded")

	// ErrMaxStepsExceeded reports the loop iteration budget being
	// breached, for embedders that bound runaway habang loops.
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
)

// reportf writes a non-fatal diagnostic for the current line to the
// error writer. Reporting does not halt execution; the failing
// operation yields wala instead.
func (i *Interpreter) reportf(format string, args ...any) {
	fmt.Fprintf(i.errOut, "Error at line %d: %s\n", i.line, fmt.Sprintf(format, args...))
}
