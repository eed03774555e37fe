package calculus

import "oasis/expr"

// Integrate returns an indefinite antiderivative of e with respect to v.
// If v is not a *expr.Variable, or e's variant has no rule in the table,
// the unevaluated node expr.NewIntegral(e, v) is returned with no
// constant of integration appended — only rule-table hits get "+ C".
func Integrate(e expr.Expression, v expr.Expression) expr.Expression {
	variable, isVariable := v.(*expr.Variable)
	if !isVariable {
		return expr.NewIntegral(e, v)
	}

	switch n := e.(type) {
	case *expr.Real:
		return withConstant(expr.NewMultiply(expr.NewReal(n.V), variable.Copy()))
	case *expr.Variable:
		if n.Name == variable.Name {
			return withConstant(expr.NewDivide(expr.NewExponent(variable.Copy(), expr.NewReal(2)), expr.NewReal(2)))
		}
		return withConstant(expr.NewMultiply(n.Copy(), variable.Copy()))
	case *expr.Exponent:
		return integrateExponent(n, variable)
	case *expr.Log:
		return integrateLog(n, variable)
	default:
		return expr.NewIntegral(e, variable)
	}
}

// constantOfIntegration is the conventional symbolic constant C.
func constantOfIntegration() *expr.Variable { return &expr.Variable{Name: "C"} }

func withConstant(antiderivative expr.Expression) expr.Expression {
	return expr.NewAdd(antiderivative, constantOfIntegration())
}

func integrateExponent(n *expr.Exponent, variable *expr.Variable) expr.Expression {
	baseVar, isVar := n.Base.(*expr.Variable)
	if !isVar || baseVar.Name != variable.Name {
		return expr.NewIntegral(n, variable)
	}
	power, isReal := n.Power.(*expr.Real)
	if !isReal {
		return expr.NewIntegral(n, variable)
	}
	if power.V == -1 {
		return withConstant(expr.NewLog(&expr.EulerNumber{}, variable.Copy()))
	}
	return withConstant(expr.NewDivide(
		expr.NewExponent(variable.Copy(), expr.NewReal(power.V+1)),
		expr.NewReal(power.V+1),
	))
}

func integrateLog(n *expr.Log, variable *expr.Variable) expr.Expression {
	if _, isEuler := n.Base.(*expr.EulerNumber); isEuler {
		if argVar, isVar := n.Arg.(*expr.Variable); isVar && argVar.Name == variable.Name {
			return withConstant(expr.NewMultiply(
				variable.Copy(),
				expr.NewSubtract(expr.NewLog(&expr.EulerNumber{}, variable.Copy()), expr.NewReal(1)),
			))
		}
		if k, kx, found := linearFactorOf(n.Arg, variable); found {
			inner := expr.NewMultiply(kx, expr.NewSubtract(expr.NewLog(&expr.EulerNumber{}, kx.Copy()), expr.NewReal(1)))
			return withConstant(expr.NewDivide(inner, expr.NewReal(k)))
		}
		return expr.NewIntegral(n, variable)
	}

	if c, isReal := n.Base.(*expr.Real); isReal {
		inner := Integrate(expr.NewLog(&expr.EulerNumber{}, n.Arg.Copy()), variable)
		return expr.NewDivide(inner, expr.NewLog(&expr.EulerNumber{}, expr.NewReal(c.V)))
	}
	if baseVar, isVar := n.Base.(*expr.Variable); isVar && baseVar.Name != variable.Name {
		inner := Integrate(expr.NewLog(&expr.EulerNumber{}, n.Arg.Copy()), variable)
		return expr.NewDivide(inner, expr.NewLog(&expr.EulerNumber{}, &expr.Variable{Name: baseVar.Name}))
	}

	return expr.NewIntegral(n, variable)
}

// linearFactorOf recognizes k*x (either operand order) where x is
// variable, returning k and a fresh copy of k*x.
func linearFactorOf(e expr.Expression, variable *expr.Variable) (float64, expr.Expression, bool) {
	m, isMul := e.(*expr.Multiply)
	if !isMul {
		return 0, nil, false
	}
	if r, isReal := m.A.(*expr.Real); isReal {
		if v, isVar := m.B.(*expr.Variable); isVar && v.Name == variable.Name {
			return r.V, expr.NewMultiply(expr.NewReal(r.V), variable.Copy()), true
		}
	}
	if r, isReal := m.B.(*expr.Real); isReal {
		if v, isVar := m.A.(*expr.Variable); isVar && v.Name == variable.Name {
			return r.V, expr.NewMultiply(expr.NewReal(r.V), variable.Copy()), true
		}
	}
	return 0, nil, false
}
