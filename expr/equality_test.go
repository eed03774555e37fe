package expr

import "testing"

func TestEqualsRealTolerance(t *testing.T) {
	a := NewReal(1.0)
	b := NewReal(1.0 + 1e-12)
	if !Equals(a, b) {
		t.Errorf("expected %v == %v within tolerance", a, b)
	}
}

func TestUndefinedNeverEqual(t *testing.T) {
	u1 := &Undefined{}
	u2 := &Undefined{}
	if Equals(u1, u2) {
		t.Errorf("Undefined must never equal Undefined")
	}
	if Equals(u1, u1) {
		t.Errorf("Undefined must never equal itself")
	}
}

func TestEqualsCommutativeAdd(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	a := NewAdd(x, y)
	b := NewAdd(y.Copy(), x.Copy())
	if !Equals(a, b) {
		t.Errorf("expected commuted Add trees to be equal")
	}
}

func TestEqualsAssociativeFlatten(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	z := NewVariable("z")
	// (x+y)+z
	a := NewAdd(NewAdd(x.Copy(), y.Copy()), z.Copy())
	// x+(y+z)
	b := NewAdd(x.Copy(), NewAdd(y.Copy(), z.Copy()))
	if !Equals(a, b) {
		t.Errorf("expected differently-associated Add trees to be equal")
	}
}

func TestEqualsNonCommutativeRespectsOrder(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	a := NewSubtract(x, y)
	b := NewSubtract(y.Copy(), x.Copy())
	if Equals(a, b) {
		t.Errorf("Subtract must not be commutative")
	}
}

func TestStructurallyEquivalentIgnoresLeafValues(t *testing.T) {
	a := NewAdd(NewReal(1), NewVariable("x"))
	b := NewAdd(NewReal(99), NewVariable("y"))
	if !StructurallyEquivalent(a, b) {
		t.Errorf("expected structural equivalence regardless of leaf values")
	}
}

func TestMatrixShapeIsIdentity(t *testing.T) {
	a := NewMatrix(1, 2, []float64{1, 2})
	b := NewMatrix(2, 1, []float64{1, 2})
	if Equals(a, b) {
		t.Errorf("matrices with different shape must not be equal")
	}
}

func TestCopyIsDeep(t *testing.T) {
	x := NewVariable("x")
	a := NewAdd(x, NewReal(1))
	clone := a.Copy().(*Add)
	clone.A.(*Variable).Name = "mutated"
	if a.A.(*Variable).Name != "x" {
		t.Errorf("Copy must not share operand storage with the original")
	}
}
