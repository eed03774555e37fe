package serialize

import (
	"fmt"
	"strings"

	"oasis/expr"
)

// XMLNode is a minimal MathML element tree: a tag, its attributes, and
// either text content or child nodes.
type XMLNode struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*XMLNode
}

func element(tag string, children ...*XMLNode) *XMLNode {
	return &XMLNode{Tag: tag, Children: children}
}

func textElement(tag, text string) *XMLNode {
	return &XMLNode{Tag: tag, Text: text}
}

// String renders the node tree as MathML markup.
func (n *XMLNode) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *XMLNode) write(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(n.Tag)
	for k, v := range n.Attrs {
		fmt.Fprintf(b, ` %s="%s"`, k, v)
	}
	b.WriteString(">")
	if n.Text != "" {
		b.WriteString(n.Text)
	}
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}

// MathMLSerializer builds a tree of MathML elements.
type MathMLSerializer struct{}

// ToMathML renders e as a MathML element tree; its root is the element
// for e's own variant (for example <mn> for a Real).
func ToMathML(e expr.Expression) *XMLNode {
	return expr.Accept(e, &MathMLSerializer{})
}

func (s *MathMLSerializer) VisitReal(n *expr.Real) *XMLNode {
	return textElement("mn", formatSigFigs(n.V))
}
func (s *MathMLSerializer) VisitImaginary(*expr.Imaginary) *XMLNode { return textElement("mi", "i") }
func (s *MathMLSerializer) VisitEulerNumber(*expr.EulerNumber) *XMLNode {
	return textElement("mi", "e")
}
func (s *MathMLSerializer) VisitPi(*expr.Pi) *XMLNode { return textElement("mi", "&pi;") }
func (s *MathMLSerializer) VisitVariable(n *expr.Variable) *XMLNode {
	return textElement("mi", n.Name)
}
func (s *MathMLSerializer) VisitUndefined(*expr.Undefined) *XMLNode {
	return textElement("mtext", "Undefined")
}

func (s *MathMLSerializer) VisitMatrix(n *expr.Matrix) *XMLNode {
	rows := make([]*XMLNode, n.Rows)
	for r := 0; r < n.Rows; r++ {
		cells := make([]*XMLNode, n.Cols)
		for c := 0; c < n.Cols; c++ {
			cells[c] = element("mtd", textElement("mn", formatSigFigs(n.At(r, c))))
		}
		rows[r] = element("mtr", cells...)
	}
	return element("mtable", rows...)
}

func (s *MathMLSerializer) VisitAdd(n *expr.Add) *XMLNode {
	return element("mrow", expr.Accept(n.A, s), textElement("mo", "+"), expr.Accept(n.B, s))
}

func (s *MathMLSerializer) VisitSubtract(n *expr.Subtract) *XMLNode {
	return element("mrow", expr.Accept(n.A, s), textElement("mo", "-"), expr.Accept(n.B, s))
}

func (s *MathMLSerializer) VisitMultiply(n *expr.Multiply) *XMLNode {
	if omitsMultiplicationSign(n.A) && omitsMultiplicationSign(n.B) {
		return element("mrow", expr.Accept(n.A, s), expr.Accept(n.B, s))
	}
	return element("mrow", expr.Accept(n.A, s), textElement("mo", "&#215;"), expr.Accept(n.B, s))
}

// omitsMultiplicationSign reports pairs for which MathML multiplication
// omits the operator: Real, Variable, Exponent, Log.
func omitsMultiplicationSign(e expr.Expression) bool {
	switch e.(type) {
	case *expr.Real, *expr.Variable, *expr.Exponent, *expr.Log:
		return true
	default:
		return false
	}
}

func (s *MathMLSerializer) VisitDivide(n *expr.Divide) *XMLNode {
	return element("mfrac", expr.Accept(n.A, s), expr.Accept(n.B, s))
}

func (s *MathMLSerializer) VisitExponent(n *expr.Exponent) *XMLNode {
	return element("msup", expr.Accept(n.Base, s), expr.Accept(n.Power, s))
}

func (s *MathMLSerializer) VisitLog(n *expr.Log) *XMLNode {
	return element("mrow",
		element("msub", textElement("mi", "log"), expr.Accept(n.Base, s)),
		element("mrow", textElement("mo", "("), expr.Accept(n.Arg, s), textElement("mo", ")")),
	)
}

func (s *MathMLSerializer) VisitNegate(n *expr.Negate) *XMLNode {
	return element("mrow", textElement("mo", "-"), expr.Accept(n.X, s))
}

func (s *MathMLSerializer) VisitMagnitude(n *expr.Magnitude) *XMLNode {
	return element("mrow", textElement("mo", "|"), expr.Accept(n.X, s), textElement("mo", "|"))
}

func (s *MathMLSerializer) VisitSine(n *expr.Sine) *XMLNode {
	return element("mrow", textElement("mi", "sin"), textElement("mo", "("), expr.Accept(n.X, s), textElement("mo", ")"))
}

func (s *MathMLSerializer) VisitDerivative(n *expr.Derivative) *XMLNode {
	return element("mrow",
		element("mfrac", textElement("mi", "d"), element("mrow", textElement("mi", "d"), expr.Accept(n.Var, s))),
		element("mrow", textElement("mo", "("), expr.Accept(n.Body, s), textElement("mo", ")")),
	)
}

func (s *MathMLSerializer) VisitIntegral(n *expr.Integral) *XMLNode {
	return element("mrow",
		textElement("mo", "&#8747;"),
		element("mrow", textElement("mo", "("), expr.Accept(n.Body, s), textElement("mo", ")")),
		textElement("mi", "d"),
		expr.Accept(n.Var, s),
	)
}
