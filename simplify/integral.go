package simplify

import (
	"oasis/calculus"
	"oasis/expr"
)

// VisitIntegral simplifies both operands of an Integral node, integrates,
// then simplifies the result.
func (s *Simplifier) VisitIntegral(n *expr.Integral) Outcome {
	body, out, okBody := s.child(n.Body)
	if !okBody {
		return out
	}
	v, out, okVar := s.child(n.Var)
	if !okVar {
		return out
	}

	integrated := calculus.Integrate(body, v)
	return expr.Accept(integrated, s)
}
