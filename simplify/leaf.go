package simplify

import "oasis/expr"

// Leaves and the Undefined sentinel simplify to themselves.

func (s *Simplifier) VisitReal(n *expr.Real) Outcome             { return ok(n.Copy()) }
func (s *Simplifier) VisitImaginary(n *expr.Imaginary) Outcome    { return ok(n.Copy()) }
func (s *Simplifier) VisitEulerNumber(n *expr.EulerNumber) Outcome {
	return ok(n.Copy())
}
func (s *Simplifier) VisitPi(n *expr.Pi) Outcome           { return ok(n.Copy()) }
func (s *Simplifier) VisitVariable(n *expr.Variable) Outcome { return ok(n.Copy()) }
func (s *Simplifier) VisitUndefined(n *expr.Undefined) Outcome {
	return ok(n.Copy())
}
func (s *Simplifier) VisitMatrix(n *expr.Matrix) Outcome { return ok(n.Copy()) }
