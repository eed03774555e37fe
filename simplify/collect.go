package simplify

import (
	"fmt"

	"oasis/expr"
)

// canonicalKey produces a deterministic string identity for an expression
// subtree, used to bucket "like terms" during flatten-and-collect. It is
// not a serializer (see the serialize package for user-facing output) —
// only a grouping key, so commutative operands are ordered by key to make
// x+y and y+x hash identically.
func canonicalKey(e expr.Expression) string {
	switch n := e.(type) {
	case *expr.Real:
		return fmt.Sprintf("Real:%v", n.V)
	case *expr.Imaginary:
		return "Imaginary"
	case *expr.EulerNumber:
		return "E"
	case *expr.Pi:
		return "Pi"
	case *expr.Variable:
		return "Var:" + n.Name
	case *expr.Undefined:
		return "Undefined"
	case *expr.Matrix:
		return fmt.Sprintf("Matrix:%dx%d:%v", n.Rows, n.Cols, n.Values)
	}

	if left, right, isBinary := expr.BinaryOperands(e); isBinary {
		lk, rk := canonicalKey(left), canonicalKey(right)
		if e.Category().Has(expr.Commutative) && lk > rk {
			lk, rk = rk, lk
		}
		return fmt.Sprintf("%s(%s,%s)", e.Type(), lk, rk)
	}
	if operand, isUnary := expr.UnaryOperand(e); isUnary {
		return fmt.Sprintf("%s(%s)", e.Type(), canonicalKey(operand))
	}
	return e.Type().String()
}

// addTerm is one bucket of the Add flatten-and-collect pass: all operands
// sharing the same body, summed into a single coefficient.
type addTerm struct {
	key   string
	body  expr.Expression
	coeff float64
}

// collectAddTerms buckets flattened Add operands by body: a bare x
// contributes body=x coeff=1; k*x contributes body=x coeff=k; a bare Real
// contributes to the reserved numeric accumulator.
func collectAddTerms(operands []expr.Expression) (numeric float64, hasNumeric bool, terms []*addTerm) {
	order := make([]string, 0, len(operands))
	byKey := make(map[string]*addTerm)

	for _, operand := range operands {
		if r, isReal := operand.(*expr.Real); isReal {
			numeric += r.V
			hasNumeric = true
			continue
		}

		body, coeff := addendBodyAndCoeff(operand)
		key := canonicalKey(body)
		if t, found := byKey[key]; found {
			t.coeff += coeff
			continue
		}
		t := &addTerm{key: key, body: body, coeff: coeff}
		byKey[key] = t
		order = append(order, key)
	}

	terms = make([]*addTerm, 0, len(order))
	for _, key := range order {
		terms = append(terms, byKey[key])
	}
	return numeric, hasNumeric, terms
}

// addendBodyAndCoeff splits k*x into (x, k), and anything else into (e, 1).
func addendBodyAndCoeff(e expr.Expression) (expr.Expression, float64) {
	if m, isMul := e.(*expr.Multiply); isMul {
		if r, isReal := m.A.(*expr.Real); isReal {
			return m.B, r.V
		}
		if r, isReal := m.B.(*expr.Real); isReal {
			return m.A, r.V
		}
	}
	return e, 1
}

// rebuildAdd reconstructs a balanced Add tree from the numeric accumulator
// and the surviving non-zero-coefficient terms. Coefficients within
// epsilon of zero are dropped.
func rebuildAdd(numeric float64, hasNumeric bool, terms []*addTerm) expr.Expression {
	operands := make([]expr.Expression, 0, len(terms)+1)
	if hasNumeric && !approxZero(numeric) {
		operands = append(operands, expr.NewReal(numeric))
	}
	for _, t := range terms {
		if approxZero(t.coeff) {
			continue
		}
		if approxEqual(t.coeff, 1) {
			operands = append(operands, t.body)
			continue
		}
		operands = append(operands, expr.NewMultiply(expr.NewReal(t.coeff), t.body))
	}
	if len(operands) == 0 {
		return expr.NewReal(0)
	}
	return expr.Rebuild(operands, func(a, b expr.Expression) expr.Expression { return expr.NewAdd(a, b) })
}

// mulFactor is one bucket of the Multiply flatten-and-collect pass: all
// operands sharing the same base, summed into a single exponent.
type mulFactor struct {
	key      string
	base     expr.Expression
	exponent float64
}

// collectMulFactors buckets flattened Multiply operands by base: a bare x
// has exponent 1, x^n has exponent n, a bare Real contributes to the
// reserved product accumulator.
func collectMulFactors(operands []expr.Expression) (product float64, hasNumeric bool, factors []*mulFactor) {
	order := make([]string, 0, len(operands))
	byKey := make(map[string]*mulFactor)
	product = 1

	for _, operand := range operands {
		if r, isReal := operand.(*expr.Real); isReal {
			product *= r.V
			hasNumeric = true
			continue
		}

		base, exponent := factorBaseAndExponent(operand)
		key := canonicalKey(base)
		if f, found := byKey[key]; found {
			f.exponent += exponent
			continue
		}
		f := &mulFactor{key: key, base: base, exponent: exponent}
		byKey[key] = f
		order = append(order, key)
	}

	factors = make([]*mulFactor, 0, len(order))
	for _, key := range order {
		factors = append(factors, byKey[key])
	}
	return product, hasNumeric, factors
}

// factorBaseAndExponent splits x^n into (x, n), and anything else into
// (e, 1).
func factorBaseAndExponent(e expr.Expression) (expr.Expression, float64) {
	if exp, isExp := e.(*expr.Exponent); isExp {
		if r, isReal := exp.Power.(*expr.Real); isReal {
			return exp.Base, r.V
		}
	}
	return e, 1
}

// rebuildMul reconstructs a balanced Multiply tree from the product
// accumulator and the surviving non-zero-exponent factors.
func rebuildMul(product float64, hasNumeric bool, factors []*mulFactor) expr.Expression {
	operands := make([]expr.Expression, 0, len(factors)+1)
	if hasNumeric {
		if approxZero(product) {
			return expr.NewReal(0)
		}
		if !approxEqual(product, 1) {
			operands = append(operands, expr.NewReal(product))
		}
	}
	for _, f := range factors {
		if approxZero(f.exponent) {
			continue
		}
		if approxEqual(f.exponent, 1) {
			operands = append(operands, f.base)
			continue
		}
		operands = append(operands, expr.NewExponent(f.base, expr.NewReal(f.exponent)))
	}
	if len(operands) == 0 {
		return expr.NewReal(1)
	}
	return expr.Rebuild(operands, func(a, b expr.Expression) expr.Expression { return expr.NewMultiply(a, b) })
}

// cancelDivide flattens numerator and denominator into factor vectors,
// cancels shared bases by subtracting exponents, and rebuilds. Factors
// that only appear on one side pass through unchanged.
func cancelDivide(numerator, denominator expr.Expression) expr.Expression {
	var numOps, denOps []expr.Expression
	expr.Flatten(numerator, &numOps)
	expr.Flatten(denominator, &denOps)

	numProduct, numHasNumeric, numFactors := collectMulFactors(numOps)
	denProduct, denHasNumeric, denFactors := collectMulFactors(denOps)

	denByKey := make(map[string]*mulFactor, len(denFactors))
	for _, f := range denFactors {
		denByKey[f.key] = f
	}

	var numResult, denResult []*mulFactor
	consumed := make(map[string]bool)

	for _, nf := range numFactors {
		if df, found := denByKey[nf.key]; found {
			consumed[nf.key] = true
			net := nf.exponent - df.exponent
			if approxZero(net) {
				continue
			}
			if net > 0 {
				numResult = append(numResult, &mulFactor{base: nf.base, exponent: net})
			} else {
				denResult = append(denResult, &mulFactor{base: nf.base, exponent: -net})
			}
			continue
		}
		numResult = append(numResult, nf)
	}
	for _, df := range denFactors {
		if !consumed[df.key] {
			denResult = append(denResult, df)
		}
	}

	var numericNet float64 = 1
	hasNumericNet := numHasNumeric || denHasNumeric
	if numHasNumeric {
		numericNet *= numProduct
	}
	if denHasNumeric && !approxZero(denProduct) {
		numericNet /= denProduct
	}

	num := rebuildMul(numericNet, hasNumericNet, numResult)
	den := rebuildMul(1, false, denResult)

	if isOne(den) {
		return num
	}
	if isOne(num) && len(denResult) == 0 {
		return num
	}
	return expr.NewDivide(num, den)
}

func isOne(e expr.Expression) bool {
	r, isReal := e.(*expr.Real)
	return isReal && approxEqual(r.V, 1)
}
