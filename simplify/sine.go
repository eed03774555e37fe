package simplify

import (
	"math"

	"oasis/expr"
)

// VisitSine simplifies the operand and constant-folds a Real argument.
// Richer trigonometric identities are out of scope.
func (s *Simplifier) VisitSine(n *expr.Sine) Outcome {
	x, out, okX := s.child(n.X)
	if !okX {
		return out
	}
	if r, isReal := x.(*expr.Real); isReal {
		return ok(expr.NewReal(math.Sin(r.V)))
	}
	return ok(expr.NewSine(x))
}
