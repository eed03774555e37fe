// Package simplify implements the bottom-up, rule-directed algebraic
// simplifier. Zero-finding calls into it, and its Derivative and Integral
// handlers simplify whatever the calculus package returns.
package simplify

import "oasis/expr"

// Outcome is the Simplifier's per-node visitor result: the simplified
// expression, or a structural error when a handler is asked to operate on
// a tree missing a required operand. An algebraically undefined result
// (log of a non-positive argument, an invalid log base) is not an error —
// it is the *Expression value* expr.Undefined, carried in Value with Err
// nil.
type Outcome struct {
	Value expr.Expression
	Err   error
}

func ok(e expr.Expression) Outcome { return Outcome{Value: e} }
func fail(err error) Outcome       { return Outcome{Err: err} }
func undefined() Outcome           { return Outcome{Value: &expr.Undefined{}} }

// Simplifier is a single-pass, bottom-up rewriter: each Visit method
// simplifies its operands first, builds a normalized parent, then tries an
// ordered list of rewrite rules, returning the first that applies or the
// normalized parent unchanged. It never loops to a fixed point on its
// own — callers that want deeper convergence call Simplify again on the
// output. VisitDerivative and VisitIntegral re-simplify the tree the
// calculus package returns in this way.
type Simplifier struct{}

// Simplify runs the simplifier once over e and returns the rewritten tree,
// or a structural error if e (or a subtree) is malformed.
func Simplify(e expr.Expression) (expr.Expression, error) {
	out := expr.Accept(e, &Simplifier{})
	return out.Value, out.Err
}

// child simplifies a single operand and reports whether it succeeded; on
// failure the caller should propagate the Outcome outward unchanged.
func (s *Simplifier) child(e expr.Expression) (expr.Expression, Outcome, bool) {
	out := expr.Accept(e, s)
	if out.Err != nil {
		return nil, out, false
	}
	return out.Value, Outcome{}, true
}
