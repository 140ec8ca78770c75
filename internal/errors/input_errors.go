package errors

import (
	stderrors "errors"
	"fmt"
)

// Messages shown to the user. Their wording is part of the console contract.
const (
	ReadFailureMessage = "Something went horribly, horribly wrong... Try again"
	TokenCountMessage  = "The input should have 3 parts. The given input (\"%s\") has %d"
)

// ErrDivisionByZero is the sentinel matched by errors.Is for every
// division-by-zero InputError.
var ErrDivisionByZero = stderrors.New("division by zero")

// InputError is a structured error raised while handling one line of input
// or one arithmetic call.
type InputError struct {
	Level   ErrorLevel
	Code    string // Error code like E0001
	Message string // Message printed to the user
	Input   string // Raw input line, if any
	Count   int    // Observed token count for E0002
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// ReadFailure wraps an error returned while reading a line.
func ReadFailure(cause error) *InputError {
	return &InputError{
		Level:   Error,
		Code:    ErrorReadFailure,
		Message: ReadFailureMessage,
		Cause:   cause,
	}
}

// WrongTokenCount reports a line that did not split into three parts.
func WrongTokenCount(input string, count int) *InputError {
	return &InputError{
		Level:   Error,
		Code:    ErrorTokenCount,
		Message: fmt.Sprintf(TokenCountMessage, input, count),
		Input:   input,
		Count:   count,
	}
}

// DivisionByZero reports a zero divisor for the given dividend.
func DivisionByZero(dividend float64) *InputError {
	return &InputError{
		Level:   Error,
		Code:    ErrorDivisionByZero,
		Message: fmt.Sprintf("cannot divide %g by zero", dividend),
		Cause:   ErrDivisionByZero,
	}
}

// CodeOf returns the code of the first InputError in err's chain, or "".
func CodeOf(err error) string {
	var ie *InputError
	if stderrors.As(err, &ie) {
		return ie.Code
	}
	return ""
}
