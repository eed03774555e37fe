// Package zerofind enumerates rational real roots of a single-variable,
// integer-coefficient polynomial expression via the rational root theorem.
package zerofind

import "oasis/expr"

// Substitute returns a fresh copy of e with every occurrence of the
// variable named v.Name replaced by a fresh copy of value. It never
// mutates e or value.
func Substitute(e expr.Expression, v *expr.Variable, value expr.Expression) expr.Expression {
	switch n := e.(type) {
	case *expr.Variable:
		if n.Name == v.Name {
			return value.Copy()
		}
		return n.Copy()
	case *expr.Real, *expr.Imaginary, *expr.EulerNumber, *expr.Pi, *expr.Undefined, *expr.Matrix:
		return e.Copy()
	case *expr.Add:
		return expr.NewAdd(Substitute(n.A, v, value), Substitute(n.B, v, value))
	case *expr.Subtract:
		return expr.NewSubtract(Substitute(n.A, v, value), Substitute(n.B, v, value))
	case *expr.Multiply:
		return expr.NewMultiply(Substitute(n.A, v, value), Substitute(n.B, v, value))
	case *expr.Divide:
		return expr.NewDivide(Substitute(n.A, v, value), Substitute(n.B, v, value))
	case *expr.Exponent:
		return expr.NewExponent(Substitute(n.Base, v, value), Substitute(n.Power, v, value))
	case *expr.Log:
		return expr.NewLog(Substitute(n.Base, v, value), Substitute(n.Arg, v, value))
	case *expr.Derivative:
		return expr.NewDerivative(Substitute(n.Body, v, value), Substitute(n.Var, v, value))
	case *expr.Integral:
		return expr.NewIntegral(Substitute(n.Body, v, value), Substitute(n.Var, v, value))
	case *expr.Negate:
		return expr.NewNegate(Substitute(n.X, v, value))
	case *expr.Magnitude:
		return expr.NewMagnitude(Substitute(n.X, v, value))
	case *expr.Sine:
		return expr.NewSine(Substitute(n.X, v, value))
	default:
		return e.Copy()
	}
}
