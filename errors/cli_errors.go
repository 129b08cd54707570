package errors

import (
	stderrors "errors"
	"fmt"
)

// CliErrorCode classifies command failures so callers can react to the kind
// of failure without parsing messages.
type CliErrorCode string

const (
	// ErrCodeTransport covers network/IO failures talking to the faucet or
	// the node REST endpoint. Never retried automatically.
	ErrCodeTransport CliErrorCode = "transport_error"

	// ErrCodeTimeout means the confirmation deadline elapsed before a
	// transaction was finalized. Callers may reissue with a longer window.
	ErrCodeTimeout CliErrorCode = "timeout_error"

	// ErrCodeUnexpected is an internal invariant violation. Always fatal to
	// the current command.
	ErrCodeUnexpected CliErrorCode = "unexpected_error"
)

// CliError is the only error type that crosses a command boundary.
type CliError struct {
	Code    CliErrorCode `json:"code"`
	Message string       `json:"message"`
}

// Error implements the error interface
func (e *CliError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Transportf(format string, args ...interface{}) *CliError {
	return &CliError{Code: ErrCodeTransport, Message: fmt.Sprintf(format, args...)}
}

func Timeoutf(format string, args ...interface{}) *CliError {
	return &CliError{Code: ErrCodeTimeout, Message: fmt.Sprintf(format, args...)}
}

func Unexpectedf(format string, args ...interface{}) *CliError {
	return &CliError{Code: ErrCodeUnexpected, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the classification of err, or ErrCodeUnexpected when err was
// never classified. A nil err yields the empty code.
func CodeOf(err error) CliErrorCode {
	if err == nil {
		return ""
	}
	var ce *CliError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeUnexpected
}
