package simplify

import "oasis/expr"

// VisitSubtract simplifies a Subtract node.
func (s *Simplifier) VisitSubtract(n *expr.Subtract) Outcome {
	a, out, okA := s.child(n.A)
	if !okA {
		return out
	}
	b, out, okB := s.child(n.B)
	if !okB {
		return out
	}

	if ra, isRealA := a.(*expr.Real); isRealA {
		if rb, isRealB := b.(*expr.Real); isRealB {
			return ok(expr.NewReal(ra.V - rb.V))
		}
	}

	if expr.Equals(a, b) {
		return ok(expr.NewReal(0))
	}

	if ma, isMatA := a.(*expr.Matrix); isMatA {
		if mb, isMatB := b.(*expr.Matrix); isMatB && ma.SameShape(mb) {
			values := make([]float64, len(ma.Values))
			for i := range values {
				values[i] = ma.Values[i] - mb.Values[i]
			}
			return ok(expr.NewMatrix(ma.Rows, ma.Cols, values))
		}
	}

	if la, isLogA := a.(*expr.Log); isLogA {
		if lb, isLogB := b.(*expr.Log); isLogB && expr.Equals(la.Base, lb.Base) {
			return ok(expr.NewLog(la.Base.Copy(), expr.NewDivide(la.Arg.Copy(), lb.Arg.Copy())))
		}
	}

	bodyA, coeffA := addendBodyAndCoeff(a)
	bodyB, coeffB := addendBodyAndCoeff(b)
	if canonicalKey(bodyA) == canonicalKey(bodyB) {
		return ok(rebuildAdd(0, false, []*addTerm{{body: bodyA, coeff: coeffA - coeffB}}))
	}

	negated := pushNegate(b)
	return expr.Accept(expr.NewAdd(a, negated), s)
}

// pushNegate pushes a one-level negation through its argument:
// -(p+q) becomes (-p)+(-q); -(p-q) becomes q-p; anything else becomes
// Multiply(Real(-1), e).
func pushNegate(e expr.Expression) expr.Expression {
	switch n := e.(type) {
	case *expr.Add:
		return expr.NewAdd(expr.NewMultiply(expr.NewReal(-1), n.A), expr.NewMultiply(expr.NewReal(-1), n.B))
	case *expr.Subtract:
		return expr.NewSubtract(n.B, n.A)
	default:
		return expr.NewMultiply(expr.NewReal(-1), e)
	}
}
