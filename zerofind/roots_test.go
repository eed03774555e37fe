package zerofind

import (
	"math"
	"testing"

	"oasis/expr"
)

func TestFindRationalRootsQuadratic(t *testing.T) {
	x := expr.NewVariable("x")
	// x^2 - 5x + 6, roots 2 and 3
	poly := expr.NewAdd(
		expr.NewAdd(
			expr.NewExponent(x, expr.NewReal(2)),
			expr.NewMultiply(expr.NewReal(-5), x.Copy()),
		),
		expr.NewReal(6),
	)
	roots, err := FindRationalRoots(poly, expr.NewVariable("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := map[float64]bool{}
	for _, r := range roots {
		d, isDiv := r.(*expr.Divide)
		if !isDiv {
			t.Fatalf("expected every root as Divide(Real,Real), got %T", r)
		}
		num := d.A.(*expr.Real).V
		den := d.B.(*expr.Real).V
		found[num/den] = true
	}
	if !found[2] || !found[3] {
		t.Errorf("expected roots 2 and 3, got %v", found)
	}
}

func TestFindRationalRootsDegreeSevenPolynomial(t *testing.T) {
	x := expr.NewVariable("x")
	// 446760000x^7 - 2841027600x^6 + 2370752969x^5 + 5069070055x^4
	//   - 9967889122x^3 + 6674884402x^2 - 1989731815x + 222126775
	term := func(coeff float64, power float64) expr.Expression {
		if power == 0 {
			return expr.NewReal(coeff)
		}
		return expr.NewMultiply(expr.NewReal(coeff), expr.NewExponent(x.Copy(), expr.NewReal(power)))
	}
	poly := expr.Expression(term(222126775, 0))
	add := func(a, b expr.Expression) expr.Expression { return expr.NewAdd(a, b) }
	poly = add(poly, term(-1989731815, 1))
	poly = add(poly, term(6674884402, 2))
	poly = add(poly, term(-9967889122, 3))
	poly = add(poly, term(5069070055, 4))
	poly = add(poly, term(2370752969, 5))
	poly = add(poly, term(-2841027600, 6))
	poly = add(poly, term(446760000, 7))

	roots, err := FindRationalRoots(poly, expr.NewVariable("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[float64]bool{
		1.0 / 3:   true,
		67.0 / 73: true,
		13.0 / 17: true,
		-5.0 / 3:  true,
		101.0 / 200.0: true,
		5.0 / 1:   true,
	}
	got := map[float64]bool{}
	for _, r := range roots {
		d := r.(*expr.Divide)
		num := d.A.(*expr.Real).V
		den := d.B.(*expr.Real).V
		got[num/den] = true
	}
	for w := range want {
		if !got[w] {
			t.Errorf("expected root %v in %v", w, got)
		}
	}
	for g := range got {
		found := false
		for w := range want {
			if math.Abs(g-w) < 1e-6 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("unexpected extra root %v", g)
		}
	}
}

func TestFindRationalRootsLinear(t *testing.T) {
	x := expr.NewVariable("x")
	// x + 30, only root -30
	poly := expr.NewAdd(x, expr.NewReal(30))
	roots, err := FindRationalRoots(poly, expr.NewVariable("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("expected exactly one root, got %v", roots)
	}
	d := roots[0].(*expr.Divide)
	num := d.A.(*expr.Real).V
	den := d.B.(*expr.Real).V
	if num/den != -30 {
		t.Errorf("expected root -30, got %v/%v", num, den)
	}
}

func TestFindRationalRootsRejectsNonIntegerExponent(t *testing.T) {
	x := expr.NewVariable("x")
	poly := expr.NewExponent(x, expr.NewReal(1.5))
	roots, err := FindRationalRoots(poly, expr.NewVariable("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 0 {
		t.Errorf("expected empty result for non-integral exponent, got %v", roots)
	}
}

func TestSubstituteReplacesOnlyMatchingVariable(t *testing.T) {
	x := expr.NewVariable("x")
	y := expr.NewVariable("y")
	tree := expr.NewAdd(x, y)
	out := Substitute(tree, expr.NewVariable("x"), expr.NewReal(5))

	add, isAdd := out.(*expr.Add)
	if !isAdd {
		t.Fatalf("expected Add, got %T", out)
	}
	if !expr.Equals(add.A, expr.NewReal(5)) {
		t.Errorf("expected x replaced with 5, got %v", add.A)
	}
	if !expr.Equals(add.B, expr.NewVariable("y")) {
		t.Errorf("expected y left unchanged, got %v", add.B)
	}
}
