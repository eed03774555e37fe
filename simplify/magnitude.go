package simplify

import (
	"math"

	"oasis/expr"
)

// VisitMagnitude simplifies a Magnitude node.
func (s *Simplifier) VisitMagnitude(n *expr.Magnitude) Outcome {
	x, out, okX := s.child(n.X)
	if !okX {
		return out
	}

	if r, isReal := x.(*expr.Real); isReal {
		return ok(expr.NewReal(math.Abs(r.V)))
	}
	if _, isImag := x.(*expr.Imaginary); isImag {
		return ok(expr.NewReal(1))
	}
	if k, isImagMultiple := imaginaryMultiple(x); isImagMultiple {
		return ok(expr.NewReal(math.Abs(k)))
	}
	if realPart, k, isComplex := complexParts(x); isComplex {
		if r, isReal := realPart.(*expr.Real); isReal {
			return ok(expr.NewReal(math.Sqrt(r.V*r.V + k*k)))
		}
		// symbolic real part: build sqrt(realPart^2 + k^2) unsimplified.
		return ok(expr.NewExponent(
			expr.NewAdd(expr.NewExponent(realPart, expr.NewReal(2)), expr.NewReal(k*k)),
			expr.NewReal(0.5),
		))
	}
	if m, isMatrix := x.(*expr.Matrix); isMatrix {
		var sumSquares float64
		for _, v := range m.Values {
			sumSquares += v * v
		}
		return ok(expr.NewReal(math.Sqrt(sumSquares)))
	}

	return ok(expr.NewMagnitude(x))
}

// imaginaryMultiple recognizes k*i (either operand order) and returns k.
func imaginaryMultiple(e expr.Expression) (float64, bool) {
	m, isMul := e.(*expr.Multiply)
	if !isMul {
		return 0, false
	}
	if r, isReal := m.A.(*expr.Real); isReal {
		if _, isImag := m.B.(*expr.Imaginary); isImag {
			return r.V, true
		}
	}
	if r, isReal := m.B.(*expr.Real); isReal {
		if _, isImag := m.A.(*expr.Imaginary); isImag {
			return r.V, true
		}
	}
	return 0, false
}

// complexParts recognizes a+i or a+k*i (either operand order) and returns
// the real part expression and the imaginary coefficient k.
func complexParts(e expr.Expression) (expr.Expression, float64, bool) {
	add, isAdd := e.(*expr.Add)
	if !isAdd {
		return nil, 0, false
	}
	if _, isImag := add.B.(*expr.Imaginary); isImag {
		return add.A, 1, true
	}
	if _, isImag := add.A.(*expr.Imaginary); isImag {
		return add.B, 1, true
	}
	if k, okB := imaginaryMultiple(add.B); okB {
		return add.A, k, true
	}
	if k, okA := imaginaryMultiple(add.A); okA {
		return add.B, k, true
	}
	return nil, 0, false
}
