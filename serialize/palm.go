package serialize

import (
	"fmt"
	"strconv"
	"strings"

	"oasis/expr"
)

// PALMSerializer renders an expression as the whitespace-delimited
// parenthesized prefix form of : "(op tok tok ...)". Numbers are written
// at full float precision, unlike the 5-significant-digit infix form.
// Undefined is written as (real NaN) and reads back as a Real.
type PALMSerializer struct{}

// ToPALM renders e using the default PALMSerializer.
func ToPALM(e expr.Expression) string {
	return expr.Accept(e, &PALMSerializer{})
}

func (s *PALMSerializer) VisitReal(n *expr.Real) string {
	return fmt.Sprintf("(real %s)", strconv.FormatFloat(n.V, 'g', -1, 64))
}
func (s *PALMSerializer) VisitImaginary(*expr.Imaginary) string     { return "(i)" }
func (s *PALMSerializer) VisitEulerNumber(*expr.EulerNumber) string { return "(e)" }
func (s *PALMSerializer) VisitPi(*expr.Pi) string                   { return "(pi)" }
func (s *PALMSerializer) VisitVariable(n *expr.Variable) string     { return fmt.Sprintf("(var %s)", n.Name) }

// VisitUndefined has no dedicated PALM token; it reuses the NaN numeric
// lexeme the grammar already reserves for the real-number token.
func (s *PALMSerializer) VisitUndefined(*expr.Undefined) string { return "(real NaN)" }

func (s *PALMSerializer) VisitMatrix(n *expr.Matrix) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(matrix %d %d", n.Rows, n.Cols)
	for _, v := range n.Values {
		fmt.Fprintf(&b, " %s", strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteString(")")
	return b.String()
}

func (s *PALMSerializer) binary(op string, a, b expr.Expression) string {
	return fmt.Sprintf("(%s %s %s)", op, expr.Accept(a, s), expr.Accept(b, s))
}

func (s *PALMSerializer) VisitAdd(n *expr.Add) string           { return s.binary("+", n.A, n.B) }
func (s *PALMSerializer) VisitSubtract(n *expr.Subtract) string { return s.binary("-", n.A, n.B) }
func (s *PALMSerializer) VisitMultiply(n *expr.Multiply) string { return s.binary("*", n.A, n.B) }
func (s *PALMSerializer) VisitDivide(n *expr.Divide) string     { return s.binary("/", n.A, n.B) }
func (s *PALMSerializer) VisitExponent(n *expr.Exponent) string { return s.binary("^", n.Base, n.Power) }
func (s *PALMSerializer) VisitLog(n *expr.Log) string           { return s.binary("log", n.Base, n.Arg) }
func (s *PALMSerializer) VisitDerivative(n *expr.Derivative) string {
	return s.binary("d", n.Body, n.Var)
}
func (s *PALMSerializer) VisitIntegral(n *expr.Integral) string {
	return s.binary("int", n.Body, n.Var)
}

func (s *PALMSerializer) VisitNegate(n *expr.Negate) string {
	return fmt.Sprintf("(neg %s)", expr.Accept(n.X, s))
}
func (s *PALMSerializer) VisitMagnitude(n *expr.Magnitude) string {
	return fmt.Sprintf("(magnitude %s)", expr.Accept(n.X, s))
}

// VisitSine uses "sin" as a pragmatic extension token; the core PALM
// grammar does not name one.
func (s *PALMSerializer) VisitSine(n *expr.Sine) string {
	return fmt.Sprintf("(sin %s)", expr.Accept(n.X, s))
}
