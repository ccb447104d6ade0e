package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsonwell/schemagen-mcp/pkg/schemagen"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInference    = "INFERENCE_ERROR"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapInferenceError converts an inference pipeline error into a coded error.
func WrapInferenceError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError

	var constructionErr *schemagen.ConstructionError
	switch {
	case errors.As(err, &constructionErr):
		coded = &CodedError{
			Code:    ErrCodeInference,
			Message: constructionErr.Reason,
			Cause:   err,
		}
	case strings.Contains(err.Error(), "not found"):
		coded = &CodedError{
			Code:    ErrCodeNotFound,
			Message: err.Error(),
			Cause:   err,
		}
	default:
		coded = &CodedError{
			Code:    ErrCodeInference,
			Message: err.Error(),
			Cause:   err,
		}
	}

	slog.Warn("inference error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
