package calculus_test

import (
	"testing"

	"oasis/calculus"
	"oasis/expr"
	"oasis/simplify"
)

func mustSimplify(t *testing.T, e expr.Expression) expr.Expression {
	t.Helper()
	out, err := simplify.Simplify(e)
	if err != nil {
		t.Fatalf("unexpected simplify error: %v", err)
	}
	return out
}

func TestDifferentiateConstant(t *testing.T) {
	x := expr.NewVariable("x")
	got := mustSimplify(t, calculus.Differentiate(expr.NewReal(5), x))
	if !expr.Equals(got, expr.NewReal(0)) {
		t.Errorf("diff(5, x) = %v, want 0", got)
	}
}

func TestDifferentiateMatchingVariable(t *testing.T) {
	x := expr.NewVariable("x")
	got := mustSimplify(t, calculus.Differentiate(x.Copy(), x))
	if !expr.Equals(got, expr.NewReal(1)) {
		t.Errorf("diff(x, x) = %v, want 1", got)
	}
}

func TestDifferentiateSumRule(t *testing.T) {
	x := expr.NewVariable("x")
	a := expr.NewExponent(x.Copy(), expr.NewReal(2))
	b := expr.NewMultiply(expr.NewReal(3), x.Copy())
	sum := expr.NewAdd(a, b)

	got := mustSimplify(t, calculus.Differentiate(sum, x))
	wantA := mustSimplify(t, calculus.Differentiate(a.Copy(), x))
	wantB := mustSimplify(t, calculus.Differentiate(b.Copy(), x))
	want := mustSimplify(t, expr.NewAdd(wantA, wantB))

	if !expr.Equals(got, want) {
		t.Errorf("diff(a+b, x) = %v, want %v", got, want)
	}
}

func TestDifferentiatePowerRule(t *testing.T) {
	x := expr.NewVariable("x")
	// d/dx(x^3) = 3x^2, the concrete scenario from §8.
	got := mustSimplify(t, calculus.Differentiate(expr.NewExponent(x.Copy(), expr.NewReal(3)), x))
	want := expr.NewMultiply(expr.NewReal(3), expr.NewExponent(expr.NewVariable("x"), expr.NewReal(2)))
	if !expr.Equals(got, want) {
		t.Errorf("diff(x^3, x) = %v, want %v", got, want)
	}
}

func TestIntegrateLogFundamentalTheorem(t *testing.T) {
	x := expr.NewVariable("x")
	logX := expr.NewLog(&expr.EulerNumber{}, x.Copy())

	integrated := mustSimplify(t, calculus.Integrate(logX, x))
	want := expr.NewAdd(
		expr.NewMultiply(expr.NewVariable("x"), expr.NewSubtract(expr.NewLog(&expr.EulerNumber{}, expr.NewVariable("x")), expr.NewReal(1))),
		expr.NewVariable("C"),
	)
	if !expr.Equals(integrated, want) {
		t.Errorf("integrate(log(e,x), x) = %v, want %v", integrated, want)
	}

	// Fundamental theorem: d/dx(integral) == simplify(log(e,x)), ignoring
	// the +C term differentiating away to 0.
	derivative := mustSimplify(t, calculus.Differentiate(integrated, x))
	wantDerivative := mustSimplify(t, logX.Copy())
	if !expr.Equals(derivative, wantDerivative) {
		t.Errorf("d/dx(integrate(log(e,x),x)) = %v, want %v", derivative, wantDerivative)
	}
}

func TestIntegratePowerRule(t *testing.T) {
	x := expr.NewVariable("x")
	integrated := mustSimplify(t, calculus.Integrate(expr.NewExponent(x.Copy(), expr.NewReal(2)), x))
	want := expr.NewAdd(
		expr.NewDivide(expr.NewExponent(expr.NewVariable("x"), expr.NewReal(3)), expr.NewReal(3)),
		expr.NewVariable("C"),
	)
	if !expr.Equals(integrated, want) {
		t.Errorf("integrate(x^2, x) = %v, want %v", integrated, want)
	}
}

func TestIntegrateInverseVariablePower(t *testing.T) {
	x := expr.NewVariable("x")
	integrated := mustSimplify(t, calculus.Integrate(expr.NewExponent(x.Copy(), expr.NewReal(-1)), x))
	want := expr.NewAdd(expr.NewLog(&expr.EulerNumber{}, expr.NewVariable("x")), expr.NewVariable("C"))
	if !expr.Equals(integrated, want) {
		t.Errorf("integrate(x^-1, x) = %v, want %v", integrated, want)
	}
}

func TestDifferentiateNonVariableParameterIsOpaque(t *testing.T) {
	x := expr.NewVariable("x")
	notAVariable := expr.NewReal(3)
	got := calculus.Differentiate(x, notAVariable)
	deriv, isDeriv := got.(*expr.Derivative)
	if !isDeriv {
		t.Fatalf("expected unevaluated Derivative, got %T", got)
	}
	if !expr.Equals(deriv.Var, notAVariable) {
		t.Errorf("expected var preserved, got %v", deriv.Var)
	}
}

func TestIntegrateUnknownVariantStaysUnevaluated(t *testing.T) {
	x := expr.NewVariable("x")
	got := calculus.Integrate(&expr.Sine{X: x.Copy()}, x)
	if _, isIntegral := got.(*expr.Integral); !isIntegral {
		t.Errorf("expected unevaluated Integral for Sine, got %T", got)
	}
}
