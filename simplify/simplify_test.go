package simplify

import (
	"math"
	"testing"

	"oasis/expr"
)

func mustSimplify(t *testing.T, e expr.Expression) expr.Expression {
	t.Helper()
	out, err := Simplify(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestAddRealConstantFolding(t *testing.T) {
	out := mustSimplify(t, expr.NewAdd(expr.NewReal(2), expr.NewReal(3)))
	if !expr.Equals(out, expr.NewReal(5)) {
		t.Errorf("expected 5, got %v", out)
	}
}

func TestAddIdentityZero(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewAdd(expr.NewReal(0), x))
	if !expr.Equals(out, expr.NewVariable("x")) {
		t.Errorf("expected x, got %v", out)
	}
}

func TestSubtractSelfIsZero(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewSubtract(x, x.Copy()))
	if !expr.Equals(out, expr.NewReal(0)) {
		t.Errorf("expected 0, got %v", out)
	}
}

func TestMultiplyIdentityOne(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewMultiply(expr.NewReal(1), x))
	if !expr.Equals(out, expr.NewVariable("x")) {
		t.Errorf("expected x, got %v", out)
	}
}

func TestMultiplyByZero(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewMultiply(expr.NewReal(0), x))
	if !expr.Equals(out, expr.NewReal(0)) {
		t.Errorf("expected 0, got %v", out)
	}
}

func TestAddCollectLikeTerms(t *testing.T) {
	x := expr.NewVariable("x")
	// 2x + 1 + 3 + 5x -> 7x + 4
	tree := expr.NewAdd(
		expr.NewAdd(
			expr.NewAdd(expr.NewMultiply(expr.NewReal(2), x), expr.NewReal(1)),
			expr.NewReal(3),
		),
		expr.NewMultiply(expr.NewReal(5), x.Copy()),
	)
	out := mustSimplify(t, tree)
	expected := expr.NewAdd(expr.NewMultiply(expr.NewReal(7), expr.NewVariable("x")), expr.NewReal(4))
	if !expr.Equals(out, expected) {
		t.Errorf("expected 7x + 4, got %v", out)
	}
}

func TestMultiplyCollectExponents(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewMultiply(x, x.Copy()))
	expected := expr.NewExponent(expr.NewVariable("x"), expr.NewReal(2))
	if !expr.Equals(out, expected) {
		t.Errorf("expected x^2, got %v", out)
	}
}

func TestExponentZeroPower(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewExponent(x, expr.NewReal(0)))
	if !expr.Equals(out, expr.NewReal(1)) {
		t.Errorf("expected 1, got %v", out)
	}
}

func TestExponentNestedMultiplies(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewExponent(expr.NewExponent(x, expr.NewReal(2)), expr.NewReal(3)))
	expected := expr.NewExponent(expr.NewVariable("x"), expr.NewReal(6))
	if !expr.Equals(out, expected) {
		t.Errorf("expected x^6, got %v", out)
	}
}

func TestExponentSqrtOfNegativeCoefficient(t *testing.T) {
	x := expr.NewVariable("x")
	// (-4*x)^0.5 -> sqrt(4)*sqrt(x)*i == 2*x^0.5*i
	out := mustSimplify(t, expr.NewExponent(expr.NewMultiply(expr.NewReal(-4), x), expr.NewReal(0.5)))
	expected := expr.NewMultiply(
		expr.NewMultiply(expr.NewReal(2), expr.NewExponent(expr.NewVariable("x"), expr.NewReal(0.5))),
		expr.TheImaginary.Copy(),
	)
	if !expr.Equals(out, expected) {
		t.Errorf("expected 2*sqrt(x)*i, got %v", out)
	}

	// x*(-4), written with the coefficient last, must simplify the same way.
	outSwapped := mustSimplify(t, expr.NewExponent(expr.NewMultiply(x.Copy(), expr.NewReal(-4)), expr.NewReal(0.5)))
	if !expr.Equals(outSwapped, expected) {
		t.Errorf("expected 2*sqrt(x)*i for swapped operand order, got %v", outSwapped)
	}
}

func TestMultiplyRealTimesDividePreservesDenominator(t *testing.T) {
	x := expr.NewVariable("x")
	y := expr.NewVariable("y")
	// 3 * (x/y) -> (3*x)/y
	out := mustSimplify(t, expr.NewMultiply(expr.NewReal(3), expr.NewDivide(x, y)))
	expected := expr.NewDivide(expr.NewMultiply(expr.NewReal(3), expr.NewVariable("x")), expr.NewVariable("y"))
	if !expr.Equals(out, expected) {
		t.Errorf("expected (3*x)/y, got %v", out)
	}

	// Swapped operand order, (x/y) * 3, must match the same rule.
	outSwapped := mustSimplify(t, expr.NewMultiply(expr.NewDivide(x.Copy(), y.Copy()), expr.NewReal(3)))
	if !expr.Equals(outSwapped, expected) {
		t.Errorf("expected (3*x)/y for swapped operand order, got %v", outSwapped)
	}
}

func TestLogOfOne(t *testing.T) {
	out := mustSimplify(t, expr.NewLog(expr.NewReal(2), expr.NewReal(1)))
	if !expr.Equals(out, expr.NewReal(0)) {
		t.Errorf("expected 0, got %v", out)
	}
}

func TestLogOfNonPositiveIsUndefined(t *testing.T) {
	out := mustSimplify(t, expr.NewLog(expr.NewReal(2), expr.NewReal(0)))
	if _, isUndefined := out.(*expr.Undefined); !isUndefined {
		t.Errorf("expected Undefined, got %v", out)
	}
}

func TestLogOfNegativeArgumentIsUndefined(t *testing.T) {
	// Log(10, -3) == Undefined, the concrete scenario from §8 — the
	// "log_b(|r|) + i*pi" rule-table row is unreachable, per the
	// ground-truth original, because the <= 0 guard always fires first.
	out := mustSimplify(t, expr.NewLog(expr.NewReal(10), expr.NewReal(-3)))
	if _, isUndefined := out.(*expr.Undefined); !isUndefined {
		t.Errorf("expected Undefined, got %v", out)
	}
}

func TestMagnitudeOfReal(t *testing.T) {
	out := mustSimplify(t, expr.NewMagnitude(expr.NewReal(-4)))
	if !expr.Equals(out, expr.NewReal(4)) {
		t.Errorf("expected 4, got %v", out)
	}
}

func TestDivideByZeroIsIEEEResult(t *testing.T) {
	out := mustSimplify(t, expr.NewDivide(expr.NewReal(1), expr.NewReal(0)))
	r, isReal := out.(*expr.Real)
	if !isReal || !math.IsInf(r.V, 1) {
		t.Errorf("expected +Inf Real, got %v", out)
	}
}

func TestDivideCancelsCommonFactor(t *testing.T) {
	x := expr.NewVariable("x")
	y := expr.NewVariable("y")
	// (x*y) / x -> y
	out := mustSimplify(t, expr.NewDivide(expr.NewMultiply(x, y), x.Copy()))
	if !expr.Equals(out, expr.NewVariable("y")) {
		t.Errorf("expected y, got %v", out)
	}
}

func TestDerivativeOfPowerRule(t *testing.T) {
	x := expr.NewVariable("x")
	// d/dx(x^3) -> 3x^2
	out := mustSimplify(t, expr.NewDerivative(expr.NewExponent(x, expr.NewReal(3)), expr.NewVariable("x")))
	expected := expr.NewMultiply(expr.NewReal(3), expr.NewExponent(expr.NewVariable("x"), expr.NewReal(2)))
	if !expr.Equals(out, expected) {
		t.Errorf("expected 3x^2, got %v", out)
	}
}

func TestLogBaseFiveOfTwentyFive(t *testing.T) {
	// log_5(25) == 2, the concrete scenario from §8.
	out := mustSimplify(t, expr.NewLog(expr.NewReal(5), expr.NewReal(25)))
	r, isReal := out.(*expr.Real)
	if !isReal || math.Abs(r.V-2) > 1e-6 {
		t.Errorf("expected 2, got %v", out)
	}
}

func TestDivideCancelsExponentsWithCoefficients(t *testing.T) {
	y := expr.NewVariable("y")
	z := expr.NewVariable("z")
	// (4*z^3) / (2*y*z) -> (2*z^2)/y, the concrete scenario from §8.
	tree := expr.NewDivide(
		expr.NewMultiply(expr.NewReal(4), expr.NewExponent(z, expr.NewReal(3))),
		expr.NewMultiply(expr.NewReal(2), expr.NewMultiply(y, z.Copy())),
	)
	out := mustSimplify(t, tree)
	expected := expr.NewDivide(
		expr.NewMultiply(expr.NewReal(2), expr.NewExponent(expr.NewVariable("z"), expr.NewReal(2))),
		expr.NewVariable("y"),
	)
	if !expr.Equals(out, expected) {
		t.Errorf("expected (2*z^2)/y, got %v", out)
	}
}

func TestAddDuplicateExponentTermsCollect(t *testing.T) {
	x := expr.NewVariable("x")
	// x^2 + x^2 -> 2*x^2, the concrete scenario from §8.
	tree := expr.NewAdd(expr.NewExponent(x, expr.NewReal(2)), expr.NewExponent(x.Copy(), expr.NewReal(2)))
	out := mustSimplify(t, tree)
	expected := expr.NewMultiply(expr.NewReal(2), expr.NewExponent(expr.NewVariable("x"), expr.NewReal(2)))
	if !expr.Equals(out, expected) {
		t.Errorf("expected 2*x^2, got %v", out)
	}
}

func TestIntegralOfConstant(t *testing.T) {
	x := expr.NewVariable("x")
	out := mustSimplify(t, expr.NewIntegral(expr.NewReal(4), x))
	expected := expr.NewAdd(expr.NewMultiply(expr.NewReal(4), expr.NewVariable("x")), expr.NewVariable("C"))
	if !expr.Equals(out, expected) {
		t.Errorf("expected 4x + C, got %v", out)
	}
}
