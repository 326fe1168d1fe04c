package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"gz/pkg/interpreter"
)

func newEvaluator(t *testing.T) (*interpreter.Interpreter, *bytes.Buffer) {
	t.Helper()

	var diags bytes.Buffer
	it := interpreter.New(
		interpreter.WithWriter(&bytes.Buffer{}),
		interpreter.WithErrWriter(&diags),
	)

	return it, &diags
}

func TestEvalLiterals(t *testing.T) {
	tests := []struct {
		expr        string
		expected    interpreter.Value
		description string
	}{
		{`"kumusta"`, interpreter.NewString("kumusta"), "string literal"},
		{`""`, interpreter.NewString(""), "empty string"},
		{"42", interpreter.NewInt(42), "integer"},
		{"0", interpreter.NewInt(0), "zero"},
		{"-5", interpreter.NewInt(-5), "negative integer"},
		{"tama", interpreter.NewBool(true), "boolean true keyword"},
		{"mali", interpreter.NewBool(false), "boolean false keyword"},
		{"wala", interpreter.Null, "null keyword"},
		{"  7  ", interpreter.NewInt(7), "surrounding whitespace trimmed"},
	}

	for _, test := range tests {
		it, _ := newEvaluator(t)
		v, err := it.Eval(test.expr)
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.description, err)
			continue
		}
		if !v.Equal(test.expected) {
			t.Errorf("%s: expected %v, got %v", test.description, test.expected, v)
		}
	}
}

// The evaluator has no precedence table: operators are tested in a
// fixed order and the expression splits at the first occurrence. These
// results pin that contract down.
func TestEvalOperatorOrder(t *testing.T) {
	tests := []struct {
		expr        string
		expected    int64
		description string
	}{
		{"2 + 3 * 4", 14, "plus splits before star"},
		{"2 * 3 + 4", 10, "left split on first plus"},
		{"10 - 2 - 3", 11, "first-occurrence minus folds the right side first"},
		{"20 / 2 + 3", 13, "plus splits before slash"},
		{"8 / 4", 2, "integer division"},
		{"7 / 2", 3, "division truncates"},
		{"2 + 3 + 4", 9, "chained plus"},
	}

	for _, test := range tests {
		it, _ := newEvaluator(t)
		v, err := it.Eval(test.expr)
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.description, err)
			continue
		}
		if !v.Equal(interpreter.NewInt(test.expected)) {
			t.Errorf("%s: %q expected %d, got %v", test.description, test.expr, test.expected, v)
		}
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		expr     string
		expected bool
	}{
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 <= 2", true},
		{"3 >= 4", false},
		{"1 == 1", true},
		{"1 == 2", false},
		{"1 != 2", true},
		{`"a" == "a"`, true},
		{`"a" < "b"`, true},
		{"tama == tama", true},
		{"wala == wala", true},
		{`1 == "1"`, false},
	}

	for _, test := range tests {
		it, _ := newEvaluator(t)
		v, err := it.Eval(test.expr)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.expr, err)
			continue
		}
		if !v.Equal(interpreter.NewBool(test.expected)) {
			t.Errorf("%q: expected %v, got %v", test.expr, test.expected, v)
		}
	}
}

// A whole expression wrapped in quotes is one string literal, even
// when an operator sits between the quotes. Concatenation therefore
// only happens through variables (covered in interpreter_test).
func TestEvalQuotedExpressionIsOneLiteral(t *testing.T) {
	it, _ := newEvaluator(t)

	v, err := it.Eval(`"ab" + "cd"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equal(interpreter.NewString(`ab" + "cd`)) {
		t.Errorf("expected the raw inter-quote text, got %v", v)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	it, diags := newEvaluator(t)

	v, err := it.Eval("5 / 0")
	if err != nil {
		t.Fatalf("division by zero must not be fatal, got %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected wala, got %v", v)
	}
	if !strings.Contains(diags.String(), "Division by zero") {
		t.Errorf("expected a division-by-zero diagnostic, got %q", diags.String())
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	it, diags := newEvaluator(t)

	v, err := it.Eval("ghost")
	if err != nil {
		t.Fatalf("undefined variable must not be fatal, got %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected wala, got %v", v)
	}
	if !strings.Contains(diags.String(), "Variable 'ghost' not defined") {
		t.Errorf("expected an undefined-variable diagnostic, got %q", diags.String())
	}
}

func TestEvalUnrecognized(t *testing.T) {
	it, diags := newEvaluator(t)

	v, err := it.Eval("@!?")
	if err != nil {
		t.Fatalf("unrecognized expression must not be fatal, got %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected wala, got %v", v)
	}
	if !strings.Contains(diags.String(), "Cannot evaluate expression") {
		t.Errorf("expected an unrecognized-expression diagnostic, got %q", diags.String())
	}
}

func TestEvalTypeMismatch(t *testing.T) {
	it, diags := newEvaluator(t)

	v, err := it.Eval(`1 + "a"`)
	if err != nil {
		t.Fatalf("type mismatch must not be fatal, got %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected wala, got %v", v)
	}
	if !strings.Contains(diags.String(), "Cannot apply '+'") {
		t.Errorf("expected a type-mismatch diagnostic, got %q", diags.String())
	}
}

func TestEvalUndefinedFunction(t *testing.T) {
	it, diags := newEvaluator(t)

	v, err := it.Eval("missing(1)")
	if err != nil {
		t.Fatalf("undefined function must not be fatal, got %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected wala, got %v", v)
	}
	if !strings.Contains(diags.String(), "Function 'missing' not defined") {
		t.Errorf("expected an undefined-function diagnostic, got %q", diags.String())
	}
}
