// File: internal/services/content/errors.go
package content

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeParse      ErrorType = "PARSE"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type ContentError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *ContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("content %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ContentError) Unwrap() error { return e.Cause }

func NewProviderError(operation, msg string, cause error) *ContentError {
	return &ContentError{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}

func NewParseError(operation, msg string, cause error) *ContentError {
	return &ContentError{Type: ErrTypeParse, Operation: operation, Message: msg, Cause: cause}
}
