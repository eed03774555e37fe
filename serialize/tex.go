package serialize

import (
	"fmt"
	"strings"

	"oasis/expr"
)

// Spacing controls whether TeXSerializer pads operators with spaces.
type Spacing int

const (
	SpacingMinimal Spacing = iota
	SpacingRegular
)

// DivisionStyle controls how TeXSerializer renders Divide.
type DivisionStyle int

const (
	DivisionFrac DivisionStyle = iota
	DivisionObelus
)

// Options configures TeXSerializer's output.
type Options struct {
	Spacing         Spacing
	ImaginarySymbol string // "i" or "j"
	DecimalPlaces   int
	Division        DivisionStyle
}

// DefaultOptions returns the serializer's documented defaults: minimal
// spacing, "i" for the imaginary unit, 2 decimal places, \frac division.
func DefaultOptions() Options {
	return Options{Spacing: SpacingMinimal, ImaginarySymbol: "i", DecimalPlaces: 2, Division: DivisionFrac}
}

// TeXSerializer renders an expression as LaTeX source.
type TeXSerializer struct {
	Options Options
}

// NewTeXSerializer constructs a TeXSerializer with the given options.
func NewTeXSerializer(opts Options) *TeXSerializer {
	return &TeXSerializer{Options: opts}
}

// ToTeX renders e using opts.
func ToTeX(e expr.Expression, opts Options) string {
	return expr.Accept(e, NewTeXSerializer(opts))
}

func (s *TeXSerializer) space() string {
	if s.Options.Spacing == SpacingRegular {
		return " "
	}
	return ""
}

func (s *TeXSerializer) VisitReal(n *expr.Real) string {
	return fmt.Sprintf("%.*f", s.Options.DecimalPlaces, n.V)
}
func (s *TeXSerializer) VisitImaginary(*expr.Imaginary) string { return s.Options.ImaginarySymbol }
func (s *TeXSerializer) VisitEulerNumber(*expr.EulerNumber) string { return "e" }
func (s *TeXSerializer) VisitPi(*expr.Pi) string                   { return `\pi` }
func (s *TeXSerializer) VisitVariable(n *expr.Variable) string     { return n.Name }
func (s *TeXSerializer) VisitUndefined(*expr.Undefined) string     { return `\text{Undefined}` }

func (s *TeXSerializer) VisitMatrix(n *expr.Matrix) string {
	var rows []string
	for r := 0; r < n.Rows; r++ {
		cols := make([]string, n.Cols)
		for c := 0; c < n.Cols; c++ {
			cols[c] = fmt.Sprintf("%.*f", s.Options.DecimalPlaces, n.At(r, c))
		}
		rows = append(rows, strings.Join(cols, " & "))
	}
	return `\begin{bmatrix}` + strings.Join(rows, ` \\ `) + `\end{bmatrix}`
}

func (s *TeXSerializer) binary(a expr.Expression, op string, b expr.Expression) string {
	sp := s.space()
	after := sp
	if after == "" && strings.HasPrefix(op, `\`) {
		// A control word such as \div or \cdot must not run into a following letter.
		after = " "
	}
	return fmt.Sprintf(`\left(%s%s%s%s%s\right)`, expr.Accept(a, s), sp, op, after, expr.Accept(b, s))
}

func (s *TeXSerializer) VisitAdd(n *expr.Add) string      { return s.binary(n.A, "+", n.B) }
func (s *TeXSerializer) VisitSubtract(n *expr.Subtract) string { return s.binary(n.A, "-", n.B) }
func (s *TeXSerializer) VisitMultiply(n *expr.Multiply) string { return s.binary(n.A, `\cdot`, n.B) }

func (s *TeXSerializer) VisitDivide(n *expr.Divide) string {
	if s.Options.Division == DivisionObelus {
		return s.binary(n.A, `\div`, n.B)
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, expr.Accept(n.A, s), expr.Accept(n.B, s))
}

func (s *TeXSerializer) VisitExponent(n *expr.Exponent) string {
	return fmt.Sprintf("%s^{%s}", expr.Accept(n.Base, s), expr.Accept(n.Power, s))
}

func (s *TeXSerializer) VisitLog(n *expr.Log) string {
	return fmt.Sprintf(`\log_{%s}\left(%s\right)`, expr.Accept(n.Base, s), expr.Accept(n.Arg, s))
}

func (s *TeXSerializer) VisitNegate(n *expr.Negate) string {
	return fmt.Sprintf(`-\left(%s\right)`, expr.Accept(n.X, s))
}

func (s *TeXSerializer) VisitMagnitude(n *expr.Magnitude) string {
	return fmt.Sprintf(`\left|%s\right|`, expr.Accept(n.X, s))
}

func (s *TeXSerializer) VisitSine(n *expr.Sine) string {
	return fmt.Sprintf(`\sin\left(%s\right)`, expr.Accept(n.X, s))
}

func (s *TeXSerializer) VisitDerivative(n *expr.Derivative) string {
	return fmt.Sprintf(`\frac{d}{d%s}\left(%s\right)`, expr.Accept(n.Var, s), expr.Accept(n.Body, s))
}

func (s *TeXSerializer) VisitIntegral(n *expr.Integral) string {
	return fmt.Sprintf(`\int\left(%s\right)d%s`, expr.Accept(n.Body, s), expr.Accept(n.Var, s))
}
