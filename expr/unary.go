package expr

import "fmt"

// Negate represents -x, always rewritten by the simplifier to Multiply(-1,x).
type Negate struct{ X Expression }

func NewNegate(x Expression) *Negate { return &Negate{X: x} }

func (*Negate) isExpression()      {}
func (*Negate) Type() Type         { return TypeNegate }
func (*Negate) Category() Category { return Unary }
func (n *Negate) Copy() Expression { return &Negate{X: n.X.Copy()} }
func (n *Negate) String() string   { return fmt.Sprintf("-(%s)", n.X) }

// Magnitude represents |x|.
type Magnitude struct{ X Expression }

func NewMagnitude(x Expression) *Magnitude { return &Magnitude{X: x} }

func (*Magnitude) isExpression()      {}
func (*Magnitude) Type() Type         { return TypeMagnitude }
func (*Magnitude) Category() Category { return Unary }
func (m *Magnitude) Copy() Expression { return &Magnitude{X: m.X.Copy()} }
func (m *Magnitude) String() string   { return fmt.Sprintf("|%s|", m.X) }

// Sine represents sin(x). A placeholder variant: the only identity
// currently implemented is constant folding (see simplify/sine.go); richer
// trigonometric identities are out of scope.
type Sine struct{ X Expression }

func NewSine(x Expression) *Sine { return &Sine{X: x} }

func (*Sine) isExpression()      {}
func (*Sine) Type() Type         { return TypeSine }
func (*Sine) Category() Category { return Unary }
func (s *Sine) Copy() Expression { return &Sine{X: s.X.Copy()} }
func (s *Sine) String() string   { return fmt.Sprintf("sin(%s)", s.X) }
