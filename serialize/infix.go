// Package serialize renders an expr.Expression tree to each of its
// external textual forms: infix, MathML, TeX, and PALM. Every serializer
// is an expr.Visitor[R] returning a monomorphic result type, since Go
// interface methods can't carry their own type parameters.
//
// Every expr.Expression in hand is already fully constructed (
// invariant 2 guarantees arity), so unlike the Simplifier these visitors
// never need a structural-error return: each is total over its result
// type.
package serialize

import (
	"fmt"

	"oasis/expr"
)

// InfixSerializer renders an expression as a fully parenthesized infix
// string at 5 significant digits.
type InfixSerializer struct{}

// ToInfix renders e using the default InfixSerializer.
func ToInfix(e expr.Expression) string {
	return expr.Accept(e, &InfixSerializer{})
}

func (s *InfixSerializer) VisitReal(n *expr.Real) string { return formatSigFigs(n.V) }
func (s *InfixSerializer) VisitImaginary(*expr.Imaginary) string { return "i" }
func (s *InfixSerializer) VisitEulerNumber(*expr.EulerNumber) string { return "e" }
func (s *InfixSerializer) VisitPi(*expr.Pi) string { return "pi" }
func (s *InfixSerializer) VisitVariable(n *expr.Variable) string { return n.Name }
func (s *InfixSerializer) VisitUndefined(*expr.Undefined) string { return "Undefined" }

func (s *InfixSerializer) VisitMatrix(n *expr.Matrix) string {
	out := "["
	for r := 0; r < n.Rows; r++ {
		if r > 0 {
			out += ";"
		}
		for c := 0; c < n.Cols; c++ {
			if c > 0 {
				out += ","
			}
			out += formatSigFigs(n.At(r, c))
		}
	}
	return out + "]"
}

func (s *InfixSerializer) VisitAdd(n *expr.Add) string      { return s.binary(n.A, "+", n.B) }
func (s *InfixSerializer) VisitSubtract(n *expr.Subtract) string { return s.binary(n.A, "-", n.B) }
func (s *InfixSerializer) VisitMultiply(n *expr.Multiply) string { return s.binary(n.A, "*", n.B) }
func (s *InfixSerializer) VisitDivide(n *expr.Divide) string { return s.binary(n.A, "/", n.B) }
func (s *InfixSerializer) VisitExponent(n *expr.Exponent) string {
	return s.binary(n.Base, "^", n.Power)
}

func (s *InfixSerializer) VisitLog(n *expr.Log) string {
	return fmt.Sprintf("log(%s,%s)", expr.Accept(n.Base, s), expr.Accept(n.Arg, s))
}

func (s *InfixSerializer) VisitNegate(n *expr.Negate) string {
	return fmt.Sprintf("-(%s)", expr.Accept(n.X, s))
}

func (s *InfixSerializer) VisitMagnitude(n *expr.Magnitude) string {
	return fmt.Sprintf("|(%s)|", expr.Accept(n.X, s))
}

func (s *InfixSerializer) VisitSine(n *expr.Sine) string {
	return fmt.Sprintf("sin(%s)", expr.Accept(n.X, s))
}

func (s *InfixSerializer) VisitDerivative(n *expr.Derivative) string {
	return fmt.Sprintf("dd(%s,%s)", expr.Accept(n.Body, s), expr.Accept(n.Var, s))
}

func (s *InfixSerializer) VisitIntegral(n *expr.Integral) string {
	return fmt.Sprintf("in(%s,%s)", expr.Accept(n.Body, s), expr.Accept(n.Var, s))
}

func (s *InfixSerializer) binary(a expr.Expression, op string, b expr.Expression) string {
	return fmt.Sprintf("(%s%s%s)", expr.Accept(a, s), op, expr.Accept(b, s))
}

// formatSigFigs renders v at 5 significant digits.
func formatSigFigs(v float64) string {
	return fmt.Sprintf("%.5g", v)
}
