package simplify

import "math"

// epsilon is the coefficient-comparison tolerance mandated by :
// f32::EPSILON, not the tighter tolerance expr.Equals uses for structural
// comparisons.
const epsilon = 1.1920929e-7

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func approxZero(a float64) bool {
	return math.Abs(a) <= epsilon
}
