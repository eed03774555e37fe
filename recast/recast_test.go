package recast

import (
	"testing"

	"oasis/expr"
)

func TestLeafMatchesConcreteType(t *testing.T) {
	v, ok := Match[*expr.Real](expr.NewReal(3), Leaf[*expr.Real]())
	if !ok || v.V != 3 {
		t.Fatalf("expected Real leaf to match, got %v %v", v, ok)
	}

	_, ok = Match[*expr.Variable](expr.NewReal(3), Leaf[*expr.Variable]())
	if ok {
		t.Fatalf("expected Variable pattern to reject a Real leaf")
	}
}

func TestBinaryDirectMatch(t *testing.T) {
	e := expr.NewAdd(expr.NewReal(1), expr.NewVariable("x"))
	pair, ok := Match(e, Binary(expr.TypeAdd, Leaf[*expr.Real](), Leaf[*expr.Variable]()))
	if !ok {
		t.Fatalf("expected direct Add(Real,Variable) match")
	}
	if pair.A.V != 1 || pair.B.Name != "x" {
		t.Fatalf("unexpected bound values: %+v", pair)
	}
}

func TestBinaryCommutativeSwapMatch(t *testing.T) {
	e := expr.NewAdd(expr.NewVariable("x"), expr.NewReal(1))
	pair, ok := Match(e, Binary(expr.TypeAdd, Leaf[*expr.Real](), Leaf[*expr.Variable]()))
	if !ok {
		t.Fatalf("expected swapped Add(Variable,Real) to still match Add<Real,Variable> pattern")
	}
	if pair.A.V != 1 || pair.B.Name != "x" {
		t.Fatalf("unexpected bound values: %+v", pair)
	}
}

func TestBinaryNonCommutativeRejectsSwap(t *testing.T) {
	e := expr.NewSubtract(expr.NewVariable("x"), expr.NewReal(1))
	_, ok := Match(e, Binary(expr.TypeSubtract, Leaf[*expr.Real](), Leaf[*expr.Variable]()))
	if ok {
		t.Fatalf("Subtract must not match with swapped operand order")
	}
}

func TestBinaryAssociativeFlattenMatch(t *testing.T) {
	// x + y + 1, parenthesized as (x+y)+1, should still match a pattern
	// looking for Real plus some remainder.
	e := expr.NewAdd(expr.NewAdd(expr.NewVariable("x"), expr.NewVariable("y")), expr.NewReal(1))
	pair, ok := Match(e, Binary(expr.TypeAdd, Leaf[*expr.Real](), Leaf[*expr.Add]()))
	if !ok {
		t.Fatalf("expected associative regroup to expose a Real term")
	}
	if pair.A.V != 1 {
		t.Fatalf("expected bound Real to be 1, got %v", pair.A.V)
	}
}

func TestUnaryMatch(t *testing.T) {
	e := expr.NewMagnitude(expr.NewVariable("x"))
	v, ok := Match(e, Unary[*expr.Variable](expr.TypeMagnitude, Leaf[*expr.Variable]()))
	if !ok || v.Name != "x" {
		t.Fatalf("expected Magnitude(Variable) to match, got %v %v", v, ok)
	}
}

func TestAnyMatchesAnyExpression(t *testing.T) {
	for _, e := range []expr.Expression{
		expr.NewReal(3),
		expr.NewVariable("x"),
		expr.NewAdd(expr.NewVariable("x"), expr.NewReal(1)),
	} {
		v, ok := Match(e, Any())
		if !ok || !expr.Equals(v, e) {
			t.Fatalf("expected Any() to match %v, got %v %v", e, v, ok)
		}
	}
}

func TestNestedPatternMatch(t *testing.T) {
	// Add(Real, Multiply(Real, Variable))
	e := expr.NewAdd(expr.NewReal(2), expr.NewMultiply(expr.NewReal(3), expr.NewVariable("x")))
	pattern := Binary(expr.TypeAdd,
		Leaf[*expr.Real](),
		Binary(expr.TypeMultiply, Leaf[*expr.Real](), Leaf[*expr.Variable]()),
	)
	pair, ok := Match(e, pattern)
	if !ok {
		t.Fatalf("expected nested Add<Real, Multiply<Real,Variable>> to match")
	}
	if pair.A.V != 2 || pair.B.A.V != 3 || pair.B.B.Name != "x" {
		t.Fatalf("unexpected bound values: %+v", pair)
	}
}
