// Panic recovery utilities. Numerical code occasionally panics deep inside
// matrix kernels; Recover converts such panics into structured errors so the
// pipeline fails with a propagated error instead of a crash.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error created from a recovered panic. It retains the
// original panic value and the stack trace at the time of the panic.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String provides detailed information including the stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError for the given operation and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error assigned through errp. Use with
// defer at the top of any method whose body calls into gonum kernels:
//
//	func (m *LinearSVC) Fit(X, y mat.Matrix) (err error) {
//	    defer errors.Recover(&err, "LinearSVC.Fit")
//	    ...
//	}
func Recover(errp *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)
		if errp != nil && *errp == nil {
			*errp = WithStack(panicErr)
		}
	}
}
