package serialize

import (
	"strings"
	"testing"

	"oasis/expr"
)

func TestInfixFullyParenthesizesBinary(t *testing.T) {
	e := expr.NewAdd(expr.NewVariable("x"), expr.NewReal(1))
	got := ToInfix(e)
	if got != "(x+1)" {
		t.Errorf("expected (x+1), got %q", got)
	}
}

func TestInfixNegateAndMagnitude(t *testing.T) {
	if got := ToInfix(expr.NewNegate(expr.NewVariable("x"))); got != "-(x)" {
		t.Errorf("expected -(x), got %q", got)
	}
	if got := ToInfix(expr.NewMagnitude(expr.NewVariable("x"))); got != "|(x)|" {
		t.Errorf("expected |(x)|, got %q", got)
	}
}

func TestInfixDerivativeAndIntegral(t *testing.T) {
	d := expr.NewDerivative(expr.NewVariable("x"), expr.NewVariable("x"))
	if got := ToInfix(d); got != "dd(x,x)" {
		t.Errorf("expected dd(x,x), got %q", got)
	}
	in := expr.NewIntegral(expr.NewVariable("x"), expr.NewVariable("x"))
	if got := ToInfix(in); got != "in(x,x)" {
		t.Errorf("expected in(x,x), got %q", got)
	}
}

func TestInfixConstants(t *testing.T) {
	cases := map[expr.Expression]string{
		expr.TheImaginary:    "i",
		&expr.EulerNumber{}:  "e",
		&expr.Pi{}:           "pi",
		&expr.Undefined{}:    "Undefined",
	}
	for e, want := range cases {
		if got := ToInfix(e); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestMathMLOmitsMultiplicationBetweenRealAndVariable(t *testing.T) {
	e := expr.NewMultiply(expr.NewReal(2), expr.NewVariable("x"))
	got := ToMathML(e).String()
	if strings.Contains(got, "&#215;") {
		t.Errorf("expected no multiplication sign between Real and Variable, got %q", got)
	}
}

func TestMathMLInsertsMultiplicationOtherwise(t *testing.T) {
	e := expr.NewMultiply(expr.NewAdd(expr.NewVariable("x"), expr.NewReal(1)), expr.NewVariable("y"))
	got := ToMathML(e).String()
	if !strings.Contains(got, "&#215;") {
		t.Errorf("expected a multiplication sign, got %q", got)
	}
}

func TestTeXDivisionFrac(t *testing.T) {
	e := expr.NewDivide(expr.NewVariable("x"), expr.NewVariable("y"))
	got := ToTeX(e, DefaultOptions())
	if got != `\frac{x}{y}` {
		t.Errorf(`expected \frac{x}{y}, got %q`, got)
	}
}

func TestTeXDivisionObelus(t *testing.T) {
	e := expr.NewDivide(expr.NewVariable("x"), expr.NewVariable("y"))
	opts := DefaultOptions()
	opts.Division = DivisionObelus
	got := ToTeX(e, opts)
	if got != `\left(x\div y\right)` {
		t.Errorf(`expected \left(x\div y\right), got %q`, got)
	}
}

func TestPALMRoundTripShape(t *testing.T) {
	e := expr.NewAdd(expr.NewReal(1), expr.NewVariable("x"))
	got := ToPALM(e)
	if got != "(+ (real 1) (var x))" {
		t.Errorf("expected (+ (real 1) (var x)), got %q", got)
	}
}
