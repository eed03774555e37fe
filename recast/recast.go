// Package recast implements a recursive cast matcher: an attempt to
// interpret an expr.Expression as a more specific shape, such as "Add of a
// Real and a Multiply of a Real and a Variable".
//
// Go cannot reconstruct a nested shape purely from a type parameter the way
// a Rust generic can, so the nested shape is built explicitly as a Pattern
// value out of small combinators (Leaf, Binary, Unary), composed the way a
// hand-written precedence-climbing grammar composes per-rule parse
// functions. A Pattern never mutates its input and always returns a
// freshly-copied result.
package recast

import "oasis/expr"

// Pattern attempts to match an expr.Expression against a specific shape T,
// returning a fresh copy of the matched value on success.
type Pattern[T any] interface {
	TryMatch(e expr.Expression) (T, bool)
}

// Match runs pattern p against e.
func Match[T any](e expr.Expression, p Pattern[T]) (T, bool) {
	return p.TryMatch(e)
}

// leafPattern matches when e's concrete Go type is exactly T.
type leafPattern[T expr.Expression] struct{}

// Leaf builds a Pattern that matches a single concrete variant type, e.g.
// Leaf[*expr.Real]() matches only Real leaves.
func Leaf[T expr.Expression]() Pattern[T] {
	return leafPattern[T]{}
}

func (leafPattern[T]) TryMatch(e expr.Expression) (T, bool) {
	if v, ok := e.(T); ok {
		return v.Copy().(T), true
	}
	var zero T
	return zero, false
}

type anyPattern struct{}

// Any builds a Pattern that matches any expression unconditionally,
// returning a fresh copy of it. It is the wildcard operand of a nested
// shape, e.g. the "x" in Binary(TypeMultiply, Leaf[*expr.Real](), Any()).
func Any() Pattern[expr.Expression] {
	return anyPattern{}
}

func (anyPattern) TryMatch(e expr.Expression) (expr.Expression, bool) {
	return e.Copy(), true
}

// Pair holds the bound operands of a successfully matched Binary pattern.
type Pair[A, B any] struct {
	A A
	B B
}

type binaryPattern[A, B any] struct {
	opType expr.Type
	pa     Pattern[A]
	pb     Pattern[B]
}

// Binary builds a Pattern matching a binary node of the given variant type,
// whose operands in turn match pa and pb. When the variant is commutative,
// a failed direct match is retried with the operands swapped. When the
// variant is associative, a match may additionally succeed after flattening
// the tree and regrouping the trailing operands under a fresh node of the
// same operator — this is what lets a pattern like
// Add<Real, Multiply<Real,Variable>> match a 3+-term flattened sum that
// happens to reduce to that shape.
func Binary[A, B any](opType expr.Type, pa Pattern[A], pb Pattern[B]) Pattern[Pair[A, B]] {
	return binaryPattern[A, B]{opType: opType, pa: pa, pb: pb}
}

func (p binaryPattern[A, B]) TryMatch(e expr.Expression) (result Pair[A, B], ok bool) {
	if e.Type() != p.opType {
		return result, false
	}
	left, right, isBinary := expr.BinaryOperands(e)
	if !isBinary {
		return result, false
	}
	category := e.Category()
	commutative := category.Has(expr.Commutative)
	associative := category.Has(expr.Associative)

	if a, okA := p.pa.TryMatch(left); okA {
		if b, okB := p.pb.TryMatch(right); okB {
			return Pair[A, B]{A: a, B: b}, true
		}
	}

	if commutative {
		if a, okA := p.pa.TryMatch(right); okA {
			if b, okB := p.pb.TryMatch(left); okB {
				return Pair[A, B]{A: a, B: b}, true
			}
		}
	}

	if associative {
		var ops []expr.Expression
		expr.Flatten(e, &ops)
		if len(ops) > 2 {
			if out, okAssoc := p.tryFlattened(ops, commutative); okAssoc {
				return out, true
			}
		}
	}

	return result, false
}

// tryFlattened attempts to satisfy pa against one flattened operand and pb
// against a freshly rebuilt node of the remaining operands (tried in both
// positions when commutative).
func (p binaryPattern[A, B]) tryFlattened(ops []expr.Expression, commutative bool) (Pair[A, B], bool) {
	combine := combinerFor(p.opType)
	for i := range ops {
		rest := make([]expr.Expression, 0, len(ops)-1)
		rest = append(rest, ops[:i]...)
		rest = append(rest, ops[i+1:]...)
		remainder := expr.Rebuild(rest, combine)

		if a, okA := p.pa.TryMatch(ops[i]); okA {
			if b, okB := p.pb.TryMatch(remainder); okB {
				return Pair[A, B]{A: a, B: b}, true
			}
		}
		if commutative {
			if b, okB := p.pb.TryMatch(ops[i]); okB {
				if a, okA := p.pa.TryMatch(remainder); okA {
					return Pair[A, B]{A: a, B: b}, true
				}
			}
		}
	}
	var zero Pair[A, B]
	return zero, false
}

func combinerFor(t expr.Type) func(a, b expr.Expression) expr.Expression {
	switch t {
	case expr.TypeAdd:
		return func(a, b expr.Expression) expr.Expression { return expr.NewAdd(a, b) }
	case expr.TypeMultiply:
		return func(a, b expr.Expression) expr.Expression { return expr.NewMultiply(a, b) }
	default:
		return func(a, b expr.Expression) expr.Expression { return expr.NewAdd(a, b) }
	}
}

type unaryPattern[A any] struct {
	opType expr.Type
	pa     Pattern[A]
}

// Unary builds a Pattern matching a unary node of the given variant type
// whose operand in turn matches pa.
func Unary[A any](opType expr.Type, pa Pattern[A]) Pattern[A] {
	return unaryPattern[A]{opType: opType, pa: pa}
}

func (p unaryPattern[A]) TryMatch(e expr.Expression) (A, bool) {
	var zero A
	if e.Type() != p.opType {
		return zero, false
	}
	operand, ok := expr.UnaryOperand(e)
	if !ok {
		return zero, false
	}
	return p.pa.TryMatch(operand)
}
