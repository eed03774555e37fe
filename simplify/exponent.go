package simplify

import (
	"math"

	"oasis/expr"
	"oasis/recast"
)

// VisitExponent simplifies an Exponent node against its rule table, tried
// in order; the first match wins.
func (s *Simplifier) VisitExponent(n *expr.Exponent) Outcome {
	base, out, okBase := s.child(n.Base)
	if !okBase {
		return out
	}
	power, out, okPower := s.child(n.Power)
	if !okPower {
		return out
	}

	if rp, isRealPower := power.(*expr.Real); isRealPower && approxZero(rp.V) {
		return ok(expr.NewReal(1))
	}
	if rb, isRealBase := base.(*expr.Real); isRealBase && approxZero(rb.V) {
		return ok(expr.NewReal(0))
	}
	if rb, isRealBase := base.(*expr.Real); isRealBase {
		if rp, isRealPower := power.(*expr.Real); isRealPower {
			return ok(expr.NewReal(math.Pow(rb.V, rp.V)))
		}
	}
	if rp, isRealPower := power.(*expr.Real); isRealPower && approxEqual(rp.V, 1) {
		return ok(base)
	}
	if rb, isRealBase := base.(*expr.Real); isRealBase && approxEqual(rb.V, 1) {
		return ok(expr.NewReal(1))
	}

	if _, isImagBase := base.(*expr.Imaginary); isImagBase {
		if rp, isRealPower := power.(*expr.Real); isRealPower {
			return ok(imaginaryCycle(rp.V))
		}
	}

	// (k*x)^0.5 with k<0 -> sqrt(-k)*sqrt(x)*i. A nested-shape match:
	// Exponent(Multiply(Real, Any), Real), built from recast combinators
	// rather than a hand-rolled pair of type assertions for each operand
	// order (Binary retries the swapped order itself, since Multiply is
	// commutative).
	sqrtOfNegativeCoeff := recast.Binary[recast.Pair[*expr.Real, expr.Expression], *expr.Real](
		expr.TypeExponent,
		recast.Binary[*expr.Real, expr.Expression](expr.TypeMultiply, recast.Leaf[*expr.Real](), recast.Any()),
		recast.Leaf[*expr.Real](),
	)
	if pair, matched := recast.Match[recast.Pair[recast.Pair[*expr.Real, expr.Expression], *expr.Real]](
		expr.NewExponent(base, power), sqrtOfNegativeCoeff); matched {
		k, x, p := pair.A.A.V, pair.A.B, pair.B.V
		if approxEqual(p, 0.5) && k < 0 {
			return ok(negativeCoeffSqrt(k, x))
		}
	}

	// (x^a)^b -> x^(a*b): a nested Exponent-of-Exponent shape.
	nestedExponent := recast.Binary[recast.Pair[expr.Expression, expr.Expression], expr.Expression](
		expr.TypeExponent,
		recast.Binary[expr.Expression, expr.Expression](expr.TypeExponent, recast.Any(), recast.Any()),
		recast.Any(),
	)
	if pair, matched := recast.Match[recast.Pair[recast.Pair[expr.Expression, expr.Expression], expr.Expression]](
		expr.NewExponent(base, power), nestedExponent); matched {
		innerBase, innerPower, outerPower := pair.A.A, pair.A.B, pair.B
		if ra, isRealA := innerPower.(*expr.Real); isRealA {
			if rb, isRealB := outerPower.(*expr.Real); isRealB {
				return ok(expr.NewExponent(innerBase, expr.NewReal(ra.V*rb.V)))
			}
		}
		return ok(expr.NewExponent(innerBase, expr.NewMultiply(innerPower, outerPower)))
	}

	// a^(log_a x) -> x: the power must structurally be a Log whose base
	// equals the outer base (an equality constraint recast's purely
	// structural matching can't express, so it's checked after the match).
	logPattern := recast.Binary[expr.Expression, expr.Expression](expr.TypeLog, recast.Any(), recast.Any())
	if pair, matched := recast.Match(power, logPattern); matched && expr.Equals(pair.A, base) {
		return ok(pair.B)
	}

	return ok(expr.NewExponent(base, power))
}

// imaginaryCycle implements i^n for integral-valued n, cycling 1, i, -1,
// -i every 4 steps.
func imaginaryCycle(n float64) expr.Expression {
	m := int(math.Mod(n, 4))
	if m < 0 {
		m += 4
	}
	switch m {
	case 0:
		return expr.NewReal(1)
	case 1:
		return expr.TheImaginary.Copy()
	case 2:
		return expr.NewReal(-1)
	default:
		return expr.NewMultiply(expr.NewReal(-1), expr.TheImaginary.Copy())
	}
}

// negativeCoeffSqrt implements (k*x)^0.5 with k<0 -> sqrt(-k)*sqrt(x)*i.
func negativeCoeffSqrt(k float64, x expr.Expression) expr.Expression {
	half := expr.NewReal(0.5)
	sqrtCoeff := expr.NewReal(math.Sqrt(-k))
	sqrtX := expr.NewExponent(x, half)
	return expr.NewMultiply(expr.NewMultiply(sqrtCoeff, sqrtX), expr.TheImaginary.Copy())
}
