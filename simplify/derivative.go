package simplify

import (
	"oasis/calculus"
	"oasis/expr"
)

// VisitDerivative simplifies both operands of a Derivative node,
// differentiates, then simplifies the differentiated result. calculus
// never simplifies on its own, so the second pass happens here.
func (s *Simplifier) VisitDerivative(n *expr.Derivative) Outcome {
	body, out, okBody := s.child(n.Body)
	if !okBody {
		return out
	}
	v, out, okVar := s.child(n.Var)
	if !okVar {
		return out
	}

	differentiated := calculus.Differentiate(body, v)
	return expr.Accept(differentiated, s)
}
