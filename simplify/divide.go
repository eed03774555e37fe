package simplify

import "oasis/expr"

// VisitDivide simplifies a Divide node. Rule 1 performs no domain guard:
// division by a Real zero yields whatever IEEE-754 produces (±Inf or NaN)
// rather than being coerced to Undefined.
func (s *Simplifier) VisitDivide(n *expr.Divide) Outcome {
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
			return ok(expr.NewReal(ra.V / rb.V))
		}
	}

	if la, isLogA := a.(*expr.Log); isLogA {
		if lb, isLogB := b.(*expr.Log); isLogB && expr.Equals(la.Base, lb.Base) {
			return ok(expr.NewLog(lb.Arg.Copy(), la.Arg.Copy()))
		}
	}

	return ok(cancelDivide(a, b))
}
