package cli

import "fmt"

// ExitError is returned to main when the process should stop with a
// specific exit code. Message is printed to stderr as is.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageError builds the ExitError for a failed parse: the failure message,
// a blank line and the usage banner.
func UsageError(i *Interpreter) *ExitError {
	return &ExitError{
		Code:    1,
		Message: fmt.Sprintf("%s\n\n%s", i.Error(), i.String()),
	}
}
