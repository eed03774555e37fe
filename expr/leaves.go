package expr

import (
	"fmt"
	"math"
)

// Real is a real constant.
type Real struct {
	V float64
}

// NewReal constructs a Real leaf.
func NewReal(v float64) *Real { return &Real{V: v} }

func (*Real) isExpression()       {}
func (*Real) Type() Type          { return TypeReal }
func (*Real) Category() Category  { return 0 }
func (r *Real) Copy() Expression  { return &Real{V: r.V} }
func (r *Real) String() string    { return fmt.Sprintf("%g", r.V) }

// Imaginary is the imaginary unit, i.
type Imaginary struct{}

// TheImaginary is the canonical Imaginary instance; Imaginary carries no
// state, but a fresh value is still returned by Copy per the no-sharing
// invariant.
var TheImaginary = &Imaginary{}

func (*Imaginary) isExpression()      {}
func (*Imaginary) Type() Type         { return TypeImaginary }
func (*Imaginary) Category() Category { return 0 }
func (*Imaginary) Copy() Expression   { return &Imaginary{} }
func (*Imaginary) String() string     { return "i" }

// EulerNumber is the symbolic constant e.
type EulerNumber struct{}

func (*EulerNumber) isExpression()      {}
func (*EulerNumber) Type() Type         { return TypeEulerNumber }
func (*EulerNumber) Category() Category { return 0 }
func (*EulerNumber) Copy() Expression   { return &EulerNumber{} }
func (*EulerNumber) String() string     { return "e" }

// Value returns math.E, used by constant-folding rules that need its
// numeric approximation (e.g. Log/Exponent rules with a EulerNumber base).
func (*EulerNumber) Value() float64 { return math.E }

// Pi is the symbolic constant π.
type Pi struct{}

func (*Pi) isExpression()      {}
func (*Pi) Type() Type         { return TypePi }
func (*Pi) Category() Category { return 0 }
func (*Pi) Copy() Expression   { return &Pi{} }
func (*Pi) String() string     { return "pi" }

// Value returns math.Pi.
func (*Pi) Value() float64 { return math.Pi }

// Variable is a named symbolic variable; equality is string equality on Name.
type Variable struct {
	Name string
}

// NewVariable constructs a Variable leaf.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (*Variable) isExpression()        {}
func (*Variable) Type() Type           { return TypeVariable }
func (*Variable) Category() Category   { return 0 }
func (v *Variable) Copy() Expression   { return &Variable{Name: v.Name} }
func (v *Variable) String() string     { return v.Name }

// Undefined is the sentinel meaning "not defined". Undefined is never
// equal to anything, not even to another Undefined; Equals special-cases
// this rather than falling through to structural comparison.
type Undefined struct{}

func (*Undefined) isExpression()      {}
func (*Undefined) Type() Type         { return TypeUndefined }
func (*Undefined) Category() Category { return 0 }
func (*Undefined) Copy() Expression   { return &Undefined{} }
func (*Undefined) String() string     { return "Undefined" }

// Matrix is a numeric matrix treated as a leaf; Rows/Cols are part of its
// identity, so two matrices of different shape are never equal even if one
// is a submultiset of the other's values.
type Matrix struct {
	Rows, Cols int
	Values     []float64 // row-major, length Rows*Cols
}

// NewMatrix constructs a Matrix leaf. values must have length rows*cols.
func NewMatrix(rows, cols int, values []float64) *Matrix {
	v := make([]float64, len(values))
	copy(v, values)
	return &Matrix{Rows: rows, Cols: cols, Values: v}
}

func (*Matrix) isExpression()      {}
func (*Matrix) Type() Type         { return TypeMatrix }
func (*Matrix) Category() Category { return 0 }

func (m *Matrix) Copy() Expression {
	return NewMatrix(m.Rows, m.Cols, m.Values)
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.Rows, m.Cols)
}

// At returns the value at (row, col), 0-indexed.
func (m *Matrix) At(row, col int) float64 { return m.Values[row*m.Cols+col] }

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.Rows == other.Rows && m.Cols == other.Cols
}
