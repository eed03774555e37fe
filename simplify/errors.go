package simplify

import "fmt"

// StructuralError is returned when a simplification handler is asked to
// operate on a tree missing a required operand. It is not recoverable at
// the point of discovery; the caller's only remedy is to re-check how the
// tree was built.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("simplify: %s", e.Message)
}

// NewStructuralError constructs a StructuralError.
func NewStructuralError(message string) *StructuralError {
	return &StructuralError{Message: message}
}
