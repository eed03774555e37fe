package simplify

import "oasis/expr"

// VisitAdd simplifies an Add node. Rules 1, 2, 4, 5 are cheap two-operand
// shape checks tried before the flatten-and-collect catch-all (rule 7),
// which also subsumes rules 3 and 6 (it buckets any number of like terms,
// including the two-term case).
func (s *Simplifier) VisitAdd(n *expr.Add) Outcome {
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
			return ok(expr.NewReal(ra.V + rb.V))
		}
		if approxZero(ra.V) {
			return ok(b)
		}
	}
	if rb, isRealB := b.(*expr.Real); isRealB && approxZero(rb.V) {
		return ok(a)
	}

	if ma, isMatA := a.(*expr.Matrix); isMatA {
		if mb, isMatB := b.(*expr.Matrix); isMatB && ma.SameShape(mb) {
			values := make([]float64, len(ma.Values))
			for i := range values {
				values[i] = ma.Values[i] + mb.Values[i]
			}
			return ok(expr.NewMatrix(ma.Rows, ma.Cols, values))
		}
	}

	if la, isLogA := a.(*expr.Log); isLogA {
		if lb, isLogB := b.(*expr.Log); isLogB && expr.Equals(la.Base, lb.Base) {
			return ok(expr.NewLog(la.Base.Copy(), expr.NewMultiply(la.Arg.Copy(), lb.Arg.Copy())))
		}
	}

	var operands []expr.Expression
	expr.Flatten(expr.NewAdd(a, b), &operands)
	numeric, hasNumeric, terms := collectAddTerms(operands)
	return ok(rebuildAdd(numeric, hasNumeric, terms))
}
