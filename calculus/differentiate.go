// Package calculus implements symbolic differentiation and integration as
// free dispatch functions over expr.Expression, rather than as methods on
// the expression nodes themselves, keeping transformation logic in a
// package external to the node types. Keeping differentiation external
// also avoids an import cycle: the
// simplify package calls into calculus to resolve a Derivative or
// Integral node, and calculus calls back into itself (never into
// simplify) to differentiate or integrate subexpressions. The caller is
// responsible for re-simplifying the result, exactly as
// simplify.VisitDerivative and simplify.VisitIntegral do.
package calculus

import "oasis/expr"

// Differentiate returns the symbolic derivative of e with respect to v.
// If v is not a *expr.Variable, or e's variant has no rule in the table,
// the unevaluated node expr.NewDerivative(e, v) is returned — an
// indeterminate transform per the error design, not an error value.
func Differentiate(e expr.Expression, v expr.Expression) expr.Expression {
	variable, isVariable := v.(*expr.Variable)
	if !isVariable {
		return expr.NewDerivative(e, v)
	}

	switch n := e.(type) {
	case *expr.Real:
		return expr.NewReal(0)
	case *expr.Imaginary, *expr.EulerNumber, *expr.Pi, *expr.Undefined, *expr.Matrix:
		return expr.NewReal(0)
	case *expr.Variable:
		if n.Name == variable.Name {
			return expr.NewReal(1)
		}
		return expr.NewReal(0)
	case *expr.Add:
		return expr.NewAdd(Differentiate(n.A, variable), Differentiate(n.B, variable))
	case *expr.Subtract:
		return expr.NewSubtract(Differentiate(n.A, variable), Differentiate(n.B, variable))
	case *expr.Multiply:
		return expr.NewAdd(
			expr.NewMultiply(Differentiate(n.A, variable), n.B.Copy()),
			expr.NewMultiply(n.A.Copy(), Differentiate(n.B, variable)),
		)
	case *expr.Divide:
		return expr.NewDivide(
			expr.NewSubtract(
				expr.NewMultiply(Differentiate(n.A, variable), n.B.Copy()),
				expr.NewMultiply(n.A.Copy(), Differentiate(n.B, variable)),
			),
			expr.NewMultiply(n.B.Copy(), n.B.Copy()),
		)
	case *expr.Exponent:
		return differentiateExponent(n, variable)
	case *expr.Log:
		return differentiateLog(n, variable)
	case *expr.Negate:
		return expr.NewNegate(Differentiate(n.X, variable))
	case *expr.Magnitude:
		return expr.NewMagnitude(Differentiate(n.X, variable))
	default:
		// Sine, Derivative, Integral: no rule in the table.
		return expr.NewDerivative(e, variable)
	}
}

func differentiateExponent(n *expr.Exponent, variable *expr.Variable) expr.Expression {
	if baseVar, isVar := n.Base.(*expr.Variable); isVar && baseVar.Name == variable.Name {
		if power, isReal := n.Power.(*expr.Real); isReal {
			return expr.NewMultiply(
				expr.NewReal(power.V),
				expr.NewExponent(n.Base.Copy(), expr.NewReal(power.V-1)),
			)
		}
	}

	if _, isEuler := n.Base.(*expr.EulerNumber); isEuler {
		return expr.NewMultiply(Differentiate(n.Power, variable), expr.NewExponent(n.Base.Copy(), n.Power.Copy()))
	}

	if c, isReal := n.Base.(*expr.Real); isReal {
		return expr.NewMultiply(
			expr.NewMultiply(Differentiate(n.Power, variable), expr.NewExponent(n.Base.Copy(), n.Power.Copy())),
			expr.NewLog(&expr.EulerNumber{}, expr.NewReal(c.V)),
		)
	}

	if baseVar, isVar := n.Base.(*expr.Variable); isVar {
		return expr.NewMultiply(
			expr.NewMultiply(Differentiate(n.Power, variable), expr.NewExponent(n.Base.Copy(), n.Power.Copy())),
			expr.NewLog(&expr.EulerNumber{}, &expr.Variable{Name: baseVar.Name}),
		)
	}

	return expr.NewDerivative(n, variable)
}

func differentiateLog(n *expr.Log, variable *expr.Variable) expr.Expression {
	if _, isEuler := n.Base.(*expr.EulerNumber); isEuler {
		return expr.NewDivide(Differentiate(n.Arg, variable), n.Arg.Copy())
	}
	if c, isReal := n.Base.(*expr.Real); isReal {
		return expr.NewDivide(
			Differentiate(n.Arg, variable),
			expr.NewMultiply(n.Arg.Copy(), expr.NewLog(&expr.EulerNumber{}, expr.NewReal(c.V))),
		)
	}
	changeOfBase := expr.NewDivide(
		expr.NewLog(&expr.EulerNumber{}, n.Arg.Copy()),
		expr.NewLog(&expr.EulerNumber{}, n.Base.Copy()),
	)
	return Differentiate(changeOfBase, variable)
}
