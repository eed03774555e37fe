package simplify

import (
	"math"

	"oasis/expr"
)

// VisitLog simplifies a Log node against its rule table.
func (s *Simplifier) VisitLog(n *expr.Log) Outcome {
	base, out, okBase := s.child(n.Base)
	if !okBase {
		return out
	}
	arg, out, okArg := s.child(n.Arg)
	if !okArg {
		return out
	}

	if rb, isRealBase := base.(*expr.Real); isRealBase && (rb.V <= 0 || approxEqual(rb.V, 1)) {
		return undefined()
	}

	if ra, isRealArg := arg.(*expr.Real); isRealArg {
		if ra.V <= 0 {
			return undefined()
		}
		if approxEqual(ra.V, 1) {
			return ok(expr.NewReal(0))
		}
	}

	if expr.Equals(base, arg) {
		return ok(expr.NewReal(1))
	}

	if rb, isRealBase := base.(*expr.Real); isRealBase {
		if ra, isRealArg := arg.(*expr.Real); isRealArg && ra.V > 0 {
			return ok(expr.NewReal(math.Log(ra.V) / math.Log(rb.V)))
		}
	}

	if exp, isExp := arg.(*expr.Exponent); isExp {
		return ok(expr.NewMultiply(exp.Power.Copy(), expr.NewLog(base, exp.Base.Copy())))
	}

	return ok(expr.NewLog(base, arg))
}
