package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

type CliniaError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	stack Callers // Not returned to clients
}

var _ error = (*CliniaError)(nil)

func newWithStack(t ErrorType, msg string) *CliniaError {
	return &CliniaError{
		Type:    t,
		Message: msg,
		// Skip newWithStack and the typed constructor
		stack: callers(2),
	}
}

func (e *CliniaError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

// StackTrace returns the call stack captured when the error was created.
func (e *CliniaError) StackTrace() Callers {
	return e.stack
}

// IsCliniaError reports whether e, or any error it wraps, is a CliniaError with a
// known type.
func IsCliniaError(e error) (*CliniaError, bool) {
	var mE *CliniaError
	if !errors.As(e, &mE) || mE == nil {
		return nil, false
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return mE, true
}
