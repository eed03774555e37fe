package expr

import "math"

// eqEpsilon is the tolerance used when comparing Real leaves for equality.
// Equals is a structural/semantic check, not a simplification, so it uses a
// tight tolerance rather than the coarser simplifier epsilon of
// simplify/tolerance.go.
const eqEpsilon = 1e-9

// Equals performs deep-structural equality modulo the commutative and
// associative invariants of the enclosing operator. Undefined is never
// equal to anything, including another Undefined.
func Equals(a, b Expression) bool {
	if _, ok := a.(*Undefined); ok {
		return false
	}
	if _, ok := b.(*Undefined); ok {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case *Real:
		return math.Abs(av.V-b.(*Real).V) <= eqEpsilon
	case *Imaginary, *EulerNumber, *Pi:
		return true
	case *Variable:
		return av.Name == b.(*Variable).Name
	case *Matrix:
		bv := b.(*Matrix)
		if !av.SameShape(bv) {
			return false
		}
		for i := range av.Values {
			if math.Abs(av.Values[i]-bv.Values[i]) > eqEpsilon {
				return false
			}
		}
		return true
	}

	if a.Category().Has(Associative) && a.Category().Has(Commutative) {
		return equalsMultiset(a, b)
	}

	if left, right, ok := BinaryOperands(a); ok {
		bl, br, _ := BinaryOperands(b)
		return Equals(left, bl) && Equals(right, br)
	}
	if operand, ok := UnaryOperand(a); ok {
		bo, _ := UnaryOperand(b)
		return Equals(operand, bo)
	}

	return false
}

// equalsMultiset compares two associative/commutative trees of the same
// operator by flattening each to a multiset of operands and checking that
// every operand in a has a matching, not-yet-consumed operand in b.
func equalsMultiset(a, b Expression) bool {
	var aOps, bOps []Expression
	Flatten(a, &aOps)
	Flatten(b, &bOps)
	if len(aOps) != len(bOps) {
		return false
	}
	used := make([]bool, len(bOps))
	for _, ae := range aOps {
		matched := false
		for i, be := range bOps {
			if used[i] {
				continue
			}
			if Equals(ae, be) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// StructurallyEquivalent reports same variant tags at each position,
// ignoring leaf values. Used by recognizers (recast.Match).
func StructurallyEquivalent(a, b Expression) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.(type) {
	case *Real, *Imaginary, *EulerNumber, *Pi, *Variable, *Undefined, *Matrix:
		return true
	}
	if al, ar, ok := BinaryOperands(a); ok {
		bl, br, _ := BinaryOperands(b)
		return StructurallyEquivalent(al, bl) && StructurallyEquivalent(ar, br)
	}
	if ao, ok := UnaryOperand(a); ok {
		bo, _ := UnaryOperand(b)
		return StructurallyEquivalent(ao, bo)
	}
	return false
}
