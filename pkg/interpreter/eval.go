package interpreter

import (
	"regexp"
	"strconv"
	"strings"

	"gz/pkg/scanner"
)

// callRegex matches a call form at the start of an expression. The
// greedy argument capture runs to the last closing parenthesis, which
// is what lets one level of nested calls survive the comma split.
var callRegex = regexp.MustCompile(`^(\w+)\((.*)\)`)

// identRegex matches a well-formed identifier.
var identRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type opKind int

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
	opLe
	opGe
	opEq
	opNe
	opLt
	opGt
)

func (op opKind) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opLe:
		return "<="
	case opGe:
		return ">="
	case opEq:
		return "=="
	case opNe:
		return "!="
	case opLt:
		return "<"
	default:
		return ">"
	}
}

// binaryOps is the fixed operator test order. Each operator is sought
// at its first textual occurrence and the expression split there; this
// order stands in for real precedence and is a behavioral contract
// (2 + 3 * 4 folds to 14, not 20).
var binaryOps = []struct {
	text string
	kind opKind
}{
	{"+", opAdd},
	{"-", opSub},
	{"*", opMul},
	{"/", opDiv},
	{"<=", opLe},
	{">=", opGe},
	{"==", opEq},
	{"!=", opNe},
	{"<", opLt},
	{">", opGt},
}

// Eval evaluates a textual expression against the current scope frame
// and function table. Evaluation never fails the run except for fatal
// resource budgets; anything unrecognized is reported and yields wala.
func (i *Interpreter) Eval(expr string) (Value, error) {
	expr = strings.TrimSpace(expr)

	// string literal
	if len(expr) >= 2 && expr[0] == '"' && expr[len(expr)-1] == '"' {
		return NewString(expr[1 : len(expr)-1]), nil
	}

	// integer literal, optionally negative
	if isIntLiteral(expr) {
		if n, err := strconv.ParseInt(expr, 10, 64); err == nil {
			return NewInt(n), nil
		}
	}

	// reserved literals
	if kw, ok := scanner.Lookup(expr); ok && kw.IsLiteral() {
		switch kw {
		case scanner.TAMA:
			return NewBool(true), nil
		case scanner.MALI:
			return NewBool(false), nil
		default:
			return Null, nil
		}
	}

	// variable reference
	if v, ok := i.scope.Get(expr); ok {
		return v, nil
	}

	// call form
	if m := callRegex.FindStringSubmatch(expr); m != nil {
		return i.evalCall(m[1], m[2])
	}

	// binary operators at their first occurrence, fixed order
	for _, op := range binaryOps {
		at := strings.Index(expr, op.text)
		if at < 0 {
			continue
		}
		// a leading '-' is a sign, not a binary split
		if op.kind == opSub && strings.HasPrefix(expr, "-") {
			continue
		}

		left, err := i.Eval(expr[:at])
		if err != nil {
			return Null, err
		}
		right, err := i.Eval(expr[at+len(op.text):])
		if err != nil {
			return Null, err
		}

		return i.applyBinary(op.kind, left, right), nil
	}

	if identRegex.MatchString(expr) {
		i.reportf("Variable '%s' not defined", expr)
		return Null, nil
	}

	i.reportf("Cannot evaluate expression: %s", expr)
	return Null, nil
}

// evalCall evaluates every comma-separated argument in the caller's
// frame, then invokes the function.
func (i *Interpreter) evalCall(name, argsStr string) (Value, error) {
	var args []Value
	if strings.TrimSpace(argsStr) != "" {
		for _, raw := range strings.Split(argsStr, ",") {
			v, err := i.Eval(raw)
			if err != nil {
				return Null, err
			}
			args = append(args, v)
		}
	}

	return i.Invoke(name, args)
}

// applyBinary folds one operator application. Mismatched operand kinds
// and division by zero are reported and yield wala.
func (i *Interpreter) applyBinary(op opKind, a, b Value) Value {
	switch op {
	case opEq:
		return NewBool(a.Equal(b))
	case opNe:
		return NewBool(!a.Equal(b))
	}

	if a.Kind == KindInt && b.Kind == KindInt {
		switch op {
		case opAdd:
			return NewInt(a.I64 + b.I64)
		case opSub:
			return NewInt(a.I64 - b.I64)
		case opMul:
			return NewInt(a.I64 * b.I64)
		case opDiv:
			if b.I64 == 0 {
				i.reportf("Division by zero")
				return Null
			}
			return NewInt(a.I64 / b.I64)
		case opLt:
			return NewBool(a.I64 < b.I64)
		case opLe:
			return NewBool(a.I64 <= b.I64)
		case opGt:
			return NewBool(a.I64 > b.I64)
		case opGe:
			return NewBool(a.I64 >= b.I64)
		}
	}

	if a.Kind == KindString && b.Kind == KindString {
		switch op {
		case opAdd:
			return NewString(a.Str + b.Str)
		case opLt:
			return NewBool(a.Str < b.Str)
		case opLe:
			return NewBool(a.Str <= b.Str)
		case opGt:
			return NewBool(a.Str > b.Str)
		case opGe:
			return NewBool(a.Str >= b.Str)
		}
	}

	i.reportf("Cannot apply '%s' to %s and %s", op, a.Kind, b.Kind)
	return Null
}

// isIntLiteral reports whether every character is a digit, allowing a
// single leading sign.
func isIntLiteral(s string) bool {
	body := strings.TrimPrefix(s, "-")
	if body == "" {
		return false
	}

	for j := 0; j < len(body); j++ {
		if body[j] < '0' || body[j] > '9' {
			return false
		}
	}

	return true
}
