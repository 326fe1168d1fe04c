package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"gz/pkg/scanner"
)

// execBlock executes a body as ordered token lines, dispatching each
// line on its leading keyword. The returned flag signals an executed
// balik; enclosing blocks unwind immediately up to the call boundary.
func (i *Interpreter) execBlock(block []scanner.Line) (Value, bool, error) {
	idx := 0
	for idx < len(block) {
		ln := block[idx]
		i.line = ln.Num

		head, rest := scanner.Cut(ln.Content)
		kw, _ := scanner.Lookup(head)

		switch kw {
		case scanner.BALIK:
			if rest == "" {
				return Null, true, nil
			}
			v, err := i.Eval(rest)
			if err != nil {
				return Null, false, err
			}
			return v, true, nil

		case scanner.SULAT:
			if err := i.execPrint(rest); err != nil {
				return Null, false, err
			}
			idx++

		case scanner.KUNG:
			cond, err := i.Eval(rest)
			if err != nil {
				return Null, false, err
			}
			body, next := scanner.CollectBody(block, idx+1, ln.Indent)
			if cond.Truthy() {
				v, returned, err := i.execBlock(body)
				if err != nil {
					return Null, false, err
				}
				if returned {
					return v, true, nil
				}
			}
			idx = next

		case scanner.PARA:
			v, returned, next, err := i.execFor(block, idx, ln, rest)
			if err != nil {
				return Null, false, err
			}
			if returned {
				return v, true, nil
			}
			idx = next

		case scanner.HABANG:
			v, returned, next, err := i.execWhile(block, idx, ln, rest)
			if err != nil {
				return Null, false, err
			}
			if returned {
				return v, true, nil
			}
			idx = next

		case scanner.SIMULA:
			// definitions may not nest; skip the block so its lines
			// cannot leak into this body
			i.reportf("Nested function definitions are not supported")
			_, next := scanner.CollectBody(block, idx+1, ln.Indent)
			idx = next

		default:
			if name, expr, ok := strings.Cut(ln.Content, " = "); ok {
				v, err := i.Eval(expr)
				if err != nil {
					return Null, false, err
				}
				i.scope.Set(strings.TrimSpace(name), v)
			} else if strings.Contains(ln.Content, "(") && strings.Contains(ln.Content, ")") {
				// bare call, evaluated for side effects only
				if _, err := i.Eval(ln.Content); err != nil {
					return Null, false, err
				}
			}
			// anything else is silently skipped
			idx++
		}
	}

	return Null, false, nil
}

// execFor runs an inclusive counted loop. The body is collected once
// and reused for every iteration; the loop variable lives in the
// shared frame and remains visible after the loop ends.
func (i *Interpreter) execFor(block []scanner.Line, idx int, ln scanner.Line, rest string) (Value, bool, int, error) {
	body, next := scanner.CollectBody(block, idx+1, ln.Indent)

	name, lo, hi, ok := parseLoopHeader(strings.Fields(rest))
	if !ok {
		i.reportf("For loop header missing bounds")
		return Null, false, next, nil
	}

	for n := lo; n <= hi; n++ {
		if err := i.countStep(); err != nil {
			return Null, false, next, err
		}

		i.scope.Set(name, NewInt(n))
		v, returned, err := i.execBlock(body)
		if err != nil {
			return Null, false, next, err
		}
		if returned {
			return v, true, next, nil
		}
	}

	return Null, false, next, nil
}

// execWhile runs a habang loop, re-evaluating the condition before
// each iteration against the shared frame.
func (i *Interpreter) execWhile(block []scanner.Line, idx int, ln scanner.Line, rest string) (Value, bool, int, error) {
	body, next := scanner.CollectBody(block, idx+1, ln.Indent)

	for {
		i.line = ln.Num
		cond, err := i.Eval(rest)
		if err != nil {
			return Null, false, next, err
		}
		if !cond.Truthy() {
			return Null, false, next, nil
		}

		if err := i.countStep(); err != nil {
			return Null, false, next, err
		}

		v, returned, err := i.execBlock(body)
		if err != nil {
			return Null, false, next, err
		}
		if returned {
			return v, true, next, nil
		}
	}
}

// parseLoopHeader accepts the dotted range form (para i 0..10) and the
// explicit two-bound form (para i 0 10). Bounds are integer literals.
func parseLoopHeader(fields []string) (name string, lo, hi int64, ok bool) {
	if len(fields) >= 2 {
		if a, b, dotted := strings.Cut(fields[1], ".."); dotted {
			lo, errLo := strconv.ParseInt(a, 10, 64)
			hi, errHi := strconv.ParseInt(b, 10, 64)
			if errLo == nil && errHi == nil {
				return fields[0], lo, hi, true
			}
			return "", 0, 0, false
		}
	}

	if len(fields) >= 3 {
		lo, errLo := strconv.ParseInt(fields[1], 10, 64)
		hi, errHi := strconv.ParseInt(fields[2], 10, 64)
		if errLo == nil && errHi == nil {
			return fields[0], lo, hi, true
		}
	}

	return "", 0, 0, false
}

// execPrint parses a comma-separated argument list, treating quoted
// substrings as atomic (with \" unescaped), evaluates the remaining
// segments as expressions, and writes everything space-joined plus a
// newline.
func (i *Interpreter) execPrint(rest string) error {
	var parts []string
	var cur strings.Builder
	inString := false

	flushExpr := func() error {
		expr := strings.TrimSpace(cur.String())
		cur.Reset()
		if expr == "" {
			return nil
		}

		v, err := i.Eval(expr)
		if err != nil {
			return err
		}
		parts = append(parts, v.String())
		return nil
	}

	for pos := 0; pos < len(rest); pos++ {
		ch := rest[pos]

		if inString {
			if ch == '\\' && pos+1 < len(rest) && rest[pos+1] == '"' {
				cur.WriteByte('"')
				pos++
				continue
			}
			if ch == '"' {
				parts = append(parts, cur.String())
				cur.Reset()
				inString = false
				continue
			}
			cur.WriteByte(ch)
			continue
		}

		switch {
		case ch == '"':
			if err := flushExpr(); err != nil {
				return err
			}
			inString = true
		case ch == ',':
			if err := flushExpr(); err != nil {
				return err
			}
		case ch == ' ' || ch == '\t':
			// whitespace outside strings is not significant
		default:
			cur.WriteByte(ch)
		}
	}

	if err := flushExpr(); err != nil {
		return err
	}

	fmt.Fprintln(i.out, strings.Join(parts, " "))
	return nil
}
