package common

import (
	"errors"
	"net/http"
)

// WorkflowError is the single error shape the workflow layer hands to the
// transport layer. Status picks the HTTP code, Message is what the client
// sees, Err (optional) is the underlying cause kept for logs only.
type WorkflowError struct {
	Status  int
	Message string
	Err     error
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

func ErrValidation(msg string) *WorkflowError {
	return &WorkflowError{Status: http.StatusBadRequest, Message: msg}
}

func ErrUnauthorized(msg string) *WorkflowError {
	return &WorkflowError{Status: http.StatusUnauthorized, Message: msg}
}

func ErrForbidden(msg string) *WorkflowError {
	return &WorkflowError{Status: http.StatusForbidden, Message: msg}
}

func ErrNotFound(msg string) *WorkflowError {
	return &WorkflowError{Status: http.StatusNotFound, Message: msg}
}

func ErrConflict(msg string) *WorkflowError {
	return &WorkflowError{Status: http.StatusConflict, Message: msg}
}

func ErrInternal(msg string, cause error) *WorkflowError {
	return &WorkflowError{Status: http.StatusInternalServerError, Message: msg, Err: cause}
}

// StatusOf maps any error to the HTTP status and client-facing message.
// Errors that are not WorkflowErrors never leak their text to the client.
func StatusOf(err error) (int, string) {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Status, wfErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
