package simplify

import "oasis/expr"

// VisitNegate rewrites to Multiply(Real(-1), x) and simplifies that
// instead.
func (s *Simplifier) VisitNegate(n *expr.Negate) Outcome {
	x, out, okX := s.child(n.X)
	if !okX {
		return out
	}
	return expr.Accept(expr.NewMultiply(expr.NewReal(-1), x), s)
}
