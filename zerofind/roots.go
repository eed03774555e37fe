package zerofind

import (
	"math"

	"oasis/expr"
	"oasis/simplify"
)

// eps is the tolerance for reading a coefficient or exponent as an integer.
const eps = 1e-9

// residualTolerance bounds the substitution check relative to the summed
// magnitude of the polynomial's terms at the candidate, since float64
// rounding in those terms grows with their size.
const residualTolerance = 1e-12

// FindRationalRoots enumerates the rational real roots of e, read as a
// polynomial in the single variable v with integer coefficients and
// exponents. It returns an empty, error-free result for any polynomial
// that doesn't meet that shape — "no false positives", not "best effort"
// — rather than a partial list. Results are Divide(Real, Real)
// values in reduced-fraction form; the caller may reduce further.
func FindRationalRoots(e expr.Expression, v *expr.Variable) ([]expr.Expression, error) {
	normalized, err := simplify.Simplify(e)
	if err != nil {
		return nil, err
	}

	terms := splitTerms(normalized)
	byExponent := make(map[int]float64)
	for _, term := range terms {
		coeff, exponent, ok := termCoeffExponent(term, v)
		if !ok {
			return nil, nil
		}
		byExponent[exponent] += coeff
	}
	if len(byExponent) == 0 {
		return nil, nil
	}

	minExp, maxExp := exponentBounds(byExponent)
	leading := byExponent[maxExp]
	constant := byExponent[minExp]
	for _, coeff := range byExponent {
		if !isIntegral(coeff) {
			return nil, nil
		}
	}

	var roots []expr.Expression
	if minExp > 0 {
		roots = append(roots, expr.NewDivide(expr.NewReal(0), expr.NewReal(1)))
	}

	for _, num := range divisors(int(math.Abs(constant))) {
		for _, den := range divisors(int(math.Abs(leading))) {
			for _, sign := range []int{1, -1} {
				n, d := reduce(sign*num, den)
				value := float64(n) / float64(d)
				substituted := Substitute(normalized, v, expr.NewReal(value))
				result, err := simplify.Simplify(substituted)
				if err != nil {
					continue
				}
				scale := 0.0
				for exp, coeff := range byExponent {
					scale += math.Abs(coeff) * math.Pow(math.Abs(value), float64(exp))
				}
				r, isReal := result.(*expr.Real)
				if !isReal || math.Abs(r.V) > residualTolerance*scale {
					continue
				}
				if !containsFraction(roots, n, d) {
					roots = append(roots, expr.NewDivide(expr.NewReal(float64(n)), expr.NewReal(float64(d))))
				}
			}
		}
	}

	return roots, nil
}

// splitTerms collects the top-level addends of e without descending into
// non-Add operators — unlike expr.Flatten, which would also split a
// standalone Multiply or Exponent term into its operands.
func splitTerms(e expr.Expression) []expr.Expression {
	if add, isAdd := e.(*expr.Add); isAdd {
		return append(splitTerms(add.A), splitTerms(add.B)...)
	}
	return []expr.Expression{e}
}

// termCoeffExponent reads a single polynomial term as coeff*v^exponent.
func termCoeffExponent(term expr.Expression, v *expr.Variable) (coeff float64, exponent int, ok bool) {
	switch n := term.(type) {
	case *expr.Real:
		if !isIntegral(n.V) {
			return 0, 0, false
		}
		return n.V, 0, true
	case *expr.Variable:
		if n.Name != v.Name {
			return 0, 0, false
		}
		return 1, 1, true
	case *expr.Exponent:
		base, isVar := n.Base.(*expr.Variable)
		power, isReal := n.Power.(*expr.Real)
		if !isVar || base.Name != v.Name || !isReal || !isIntegral(power.V) {
			return 0, 0, false
		}
		return 1, int(power.V), true
	case *expr.Multiply:
		if c, rest, found := splitRealFactor(n); found {
			restCoeff, restExp, restOk := termCoeffExponent(rest, v)
			if !restOk {
				return 0, 0, false
			}
			return c * restCoeff, restExp, true
		}
		return 0, 0, false
	default:
		return 0, 0, false
	}
}

func splitRealFactor(m *expr.Multiply) (float64, expr.Expression, bool) {
	if r, isReal := m.A.(*expr.Real); isReal {
		return r.V, m.B, true
	}
	if r, isReal := m.B.(*expr.Real); isReal {
		return r.V, m.A, true
	}
	return 0, nil, false
}

func exponentBounds(byExponent map[int]float64) (min, max int) {
	first := true
	for exp, coeff := range byExponent {
		if approxZero(coeff) {
			continue
		}
		if first || exp < min {
			min = exp
		}
		if first || exp > max {
			max = exp
		}
		first = false
	}
	return min, max
}

func approxZero(v float64) bool { return math.Abs(v) <= eps }

func isIntegral(v float64) bool { return approxZero(v - math.Round(v)) }

func divisors(n int) []int {
	if n == 0 {
		return []int{1}
	}
	var out []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		out = append(out, d)
		if other := n / d; other != d {
			out = append(out, other)
		}
	}
	return out
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func reduce(num, den int) (int, int) {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return num / g, den / g
}

func containsFraction(roots []expr.Expression, num, den int) bool {
	for _, r := range roots {
		d, isDiv := r.(*expr.Divide)
		if !isDiv {
			continue
		}
		rn, isRealN := d.A.(*expr.Real)
		rd, isRealD := d.B.(*expr.Real)
		if isRealN && isRealD && int(rn.V) == num && int(rd.V) == den {
			return true
		}
	}
	return false
}
