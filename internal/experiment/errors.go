package experiment

import (
	"errors"
	"fmt"
)

// StructuralError marks a fatal violation of the document's invariants:
// inconsistent metric-key sets across sweep points, a grouping collision, or
// a parameter value nested deeper than the documented two levels. Report
// generation aborts on these; advisory conditions never use this type.
type StructuralError struct {
	msg string
}

func (e *StructuralError) Error() string { return e.msg }

// Structuralf builds a StructuralError with fmt-style context.
func Structuralf(format string, args ...any) *StructuralError {
	return &StructuralError{msg: fmt.Sprintf(format, args...)}
}

// IsStructural reports whether err is (or wraps) a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
