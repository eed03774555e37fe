package simplify

import (
	"oasis/expr"
	"oasis/recast"
)

// VisitMultiply simplifies a Multiply node. Rule 4 (same-base exponent
// combination) is not implemented as its own two-operand check: the
// flatten-and-collect catch-all (rule 7) already buckets by base and sums
// exponents, so it produces the identical result for x*x, x*x^n, x^n*x^m,
// and the commuted-coefficient variants of each.
func (s *Simplifier) VisitMultiply(n *expr.Multiply) Outcome {
	a, out, okA := s.child(n.A)
	if !okA {
		return out
	}
	b, out, okB := s.child(n.B)
	if !okB {
		return out
	}

	if ra, isRealA := a.(*expr.Real); isRealA {
		if approxZero(ra.V) {
			return ok(expr.NewReal(0))
		}
		if approxEqual(ra.V, 1) {
			return ok(b)
		}
		if rb, isRealB := b.(*expr.Real); isRealB {
			return ok(expr.NewReal(ra.V * rb.V))
		}
	}
	if rb, isRealB := b.(*expr.Real); isRealB {
		if approxZero(rb.V) {
			return ok(expr.NewReal(0))
		}
		if approxEqual(rb.V, 1) {
			return ok(a)
		}
	}

	if _, isImagA := a.(*expr.Imaginary); isImagA {
		if _, isImagB := b.(*expr.Imaginary); isImagB {
			return ok(expr.NewReal(-1))
		}
	}

	// Real*(Divide(p,q)) -> Divide(Real*p, q), denominator preserved. Built
	// as one recast.Binary pattern instead of a hand-rolled pair of type
	// assertions per operand order: Multiply is commutative, so Binary
	// retries the swapped order itself.
	realTimesDivide := recast.Binary[*expr.Real, *expr.Divide](expr.TypeMultiply, recast.Leaf[*expr.Real](), recast.Leaf[*expr.Divide]())
	if pair, matched := recast.Match(expr.NewMultiply(a, b), realTimesDivide); matched {
		return ok(expr.NewDivide(expr.NewMultiply(pair.A, pair.B.A), pair.B.B))
	}

	if ma, isMatA := a.(*expr.Matrix); isMatA {
		if mb, isMatB := b.(*expr.Matrix); isMatB {
			if ma.Cols == mb.Rows {
				return ok(matrixProduct(ma, mb))
			}
			return ok(expr.NewMultiply(a, b))
		}
		if rb, isRealB := b.(*expr.Real); isRealB {
			return ok(scalarBroadcast(rb.V, ma))
		}
	}
	if mb, isMatB := b.(*expr.Matrix); isMatB {
		if ra, isRealA := a.(*expr.Real); isRealA {
			return ok(scalarBroadcast(ra.V, mb))
		}
	}

	var operands []expr.Expression
	expr.Flatten(expr.NewMultiply(a, b), &operands)
	product, hasNumeric, factors := collectMulFactors(operands)
	return ok(rebuildMul(product, hasNumeric, factors))
}

func matrixProduct(a, b *expr.Matrix) *expr.Matrix {
	values := make([]float64, a.Rows*b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			var sum float64
			for k := 0; k < a.Cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			values[i*b.Cols+j] = sum
		}
	}
	return expr.NewMatrix(a.Rows, b.Cols, values)
}

func scalarBroadcast(k float64, m *expr.Matrix) *expr.Matrix {
	values := make([]float64, len(m.Values))
	for i, v := range m.Values {
		values[i] = k * v
	}
	return expr.NewMatrix(m.Rows, m.Cols, values)
}
